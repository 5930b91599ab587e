package translate

import (
	"strings"

	"git.home.luguber.info/inful/sitemapper/internal/locales"
)

// Paths translates whole logical paths between the default locale and
// any other locale, segment by segment. The first segment goes through
// the segment table; for the entry-keyed collection route the second
// segment goes through the entry table instead. Deeper segments pass
// through untouched.
type Paths struct {
	locales    *locales.Set
	segments   *SegmentTable
	entries    *EntryTable
	entryRoute string // canonical first segment of the entry-keyed collection, e.g. "blog"
}

// NewPaths wires the translation tables into a path translator.
// entryRoute may be empty when no entry-keyed collection exists.
func NewPaths(ls *locales.Set, segments *SegmentTable, entries *EntryTable, entryRoute string) *Paths {
	return &Paths{locales: ls, segments: segments, entries: entries, entryRoute: entryRoute}
}

// Localize renders a canonical (default-locale) path in the given
// locale, including the locale prefix.
func (p *Paths) Localize(locale, canonicalPath string) string {
	if p.locales.IsDefault(locale) {
		return canonicalPath
	}
	segs := splitPath(canonicalPath)
	if len(segs) == 0 {
		// Localized root is just the locale prefix.
		return p.locales.Prefix(locale)
	}
	first := segs[0]
	segs[0] = p.segments.Localized(locale, first)
	if p.entryRoute != "" && first == p.entryRoute && len(segs) > 1 && p.entries != nil {
		segs[1] = p.entries.Slug(locale, p.entries.CanonicalID(p.locales.Default(), segs[1]))
	}
	return p.locales.Prefix(locale) + "/" + strings.Join(segs, "/")
}

// Delocalize is the exact inverse of Localize: strip the locale prefix
// and reverse-translate the translated segments.
func (p *Paths) Delocalize(locale, localizedPath string) string {
	if p.locales.IsDefault(locale) {
		return localizedPath
	}
	path := p.locales.StripPrefix(locale, localizedPath)
	if path == "/" {
		return path
	}
	segs := splitPath(path)
	if len(segs) == 0 {
		return path
	}
	first := p.segments.Canonical(locale, segs[0])
	segs[0] = first
	if p.entryRoute != "" && first == p.entryRoute && len(segs) > 1 && p.entries != nil {
		segs[1] = p.entries.Slug(p.locales.Default(), p.entries.CanonicalID(locale, segs[1]))
	}
	return "/" + strings.Join(segs, "/")
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
