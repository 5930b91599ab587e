package translate

import (
	"log/slog"
	"time"

	"git.home.luguber.info/inful/sitemapper/internal/content"
	"git.home.luguber.info/inful/sitemapper/internal/logfields"
)

// EntryBucket groups every locale variant of one content entry under
// its canonical identifier.
type EntryBucket struct {
	CanonicalID string
	Slugs       map[string]string // locale -> localized slug
	LastMod     time.Time         // max across locale variants; zero if none
}

// Locales returns the locale codes holding a variant of this entry, in
// the order of the given universe.
func (b *EntryBucket) Locales(universe []string) []string {
	var out []string
	for _, l := range universe {
		if _, ok := b.Slugs[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// EntryTable maps canonical identifiers to per-locale slugs for one
// entry-keyed collection, and back.
type EntryTable struct {
	def     string
	buckets map[string]*EntryBucket
	reverse map[string]map[string]string // locale -> slug -> canonical id
	order   []string                     // canonical ids in first-seen order
}

// NewEntryTable groups scanned items by canonical identifier. An item's
// canonical id is its declared one, or its own slug when it belongs to
// the default locale, or its slug as a final fallback. Items are
// expected in sorted scan order; when two items in one locale claim the
// same canonical id the later file wins and the conflict is logged.
func NewEntryTable(defaultLocale string, items []content.Item) *EntryTable {
	t := &EntryTable{
		def:     defaultLocale,
		buckets: map[string]*EntryBucket{},
		reverse: map[string]map[string]string{},
	}
	seenFile := map[string]string{} // locale+canonical id -> file, for conflict logging
	for _, it := range items {
		id := it.CanonicalID
		if id == "" {
			id = it.Slug
		}
		b := t.buckets[id]
		if b == nil {
			b = &EntryBucket{CanonicalID: id, Slugs: map[string]string{}}
			t.buckets[id] = b
			t.order = append(t.order, id)
		}
		key := it.Locale + "\x00" + id
		if prev, ok := seenFile[key]; ok {
			slog.Warn("Duplicate canonical id in locale, later file wins",
				logfields.Locale(it.Locale),
				slog.String("canonical_id", id),
				slog.String("previous_file", prev),
				logfields.File(it.File))
		}
		seenFile[key] = it.File

		b.Slugs[it.Locale] = it.Slug
		if it.LastMod.After(b.LastMod) {
			b.LastMod = it.LastMod
		}
		rev := t.reverse[it.Locale]
		if rev == nil {
			rev = map[string]string{}
			t.reverse[it.Locale] = rev
		}
		rev[it.Slug] = id
	}
	return t
}

// Slug returns the locale's slug for a canonical identifier, defaulting
// to the identifier itself. The fallback keeps the invariant that every
// canonical identifier resolves in the default locale even when no
// default-locale variant exists.
func (t *EntryTable) Slug(locale, canonicalID string) string {
	if b, ok := t.buckets[canonicalID]; ok {
		if s, ok := b.Slugs[locale]; ok {
			return s
		}
	}
	return canonicalID
}

// CanonicalID returns the canonical identifier for a locale's slug,
// defaulting to the slug itself.
func (t *EntryTable) CanonicalID(locale, slug string) string {
	if id, ok := t.reverse[locale][slug]; ok {
		return id
	}
	return slug
}

// Buckets returns every entry bucket in first-seen order.
func (t *EntryTable) Buckets() []*EntryBucket {
	out := make([]*EntryBucket, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.buckets[id])
	}
	return out
}
