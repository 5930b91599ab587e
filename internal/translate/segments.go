// Package translate implements the bidirectional path translation layer:
// a static segment table, a per-collection entry slug table, and the
// localize/delocalize functions built on top of them.
package translate

import (
	"log/slog"

	"git.home.luguber.info/inful/sitemapper/internal/logfields"
)

// SegmentTable maps canonical path segments to their localized
// spellings and back. Built once at startup; immutable afterward.
type SegmentTable struct {
	def     string
	forward map[string]map[string]string // locale -> canonical -> localized
	reverse map[string]map[string]string // locale -> localized -> canonical
}

// NewSegmentTable builds the table from translation records. Each record
// maps locale codes to a spelling; the default-locale spelling is the
// canonical segment. Two canonical segments sharing one localized
// spelling in the same locale corrupts the reverse map (last writer
// wins), so a collision is logged.
func NewSegmentTable(defaultLocale string, records []map[string]string) *SegmentTable {
	t := &SegmentTable{
		def:     defaultLocale,
		forward: map[string]map[string]string{},
		reverse: map[string]map[string]string{},
	}
	for _, rec := range records {
		canonical := rec[defaultLocale]
		if canonical == "" {
			continue
		}
		for locale, spelling := range rec {
			if spelling == "" {
				continue
			}
			fwd := t.forward[locale]
			if fwd == nil {
				fwd = map[string]string{}
				t.forward[locale] = fwd
			}
			rev := t.reverse[locale]
			if rev == nil {
				rev = map[string]string{}
				t.reverse[locale] = rev
			}
			fwd[canonical] = spelling
			if prev, ok := rev[spelling]; ok && prev != canonical {
				slog.Debug("Localized segment collision, last writer wins",
					logfields.Locale(locale),
					slog.String("spelling", spelling),
					slog.String("previous", prev),
					slog.String("current", canonical))
			}
			rev[spelling] = canonical
		}
	}
	return t
}

// Localized returns the locale's spelling of a canonical segment,
// falling back to the canonical spelling. The default locale always
// maps a segment to itself.
func (t *SegmentTable) Localized(locale, canonical string) string {
	if locale == t.def {
		return canonical
	}
	if s, ok := t.forward[locale][canonical]; ok {
		return s
	}
	return canonical
}

// Canonical returns the canonical segment for a localized spelling,
// falling back to the input itself if unmapped.
func (t *SegmentTable) Canonical(locale, localized string) string {
	if locale == t.def {
		return localized
	}
	if s, ok := t.reverse[locale][localized]; ok {
		return s
	}
	return localized
}
