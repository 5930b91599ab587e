// Package sitemap assembles canonical path entries into locale-specific
// sitemap documents and checks cross-locale entry-count consistency.
package sitemap

import (
	"log/slog"

	"git.home.luguber.info/inful/sitemapper/internal/lastmod"
	"git.home.luguber.info/inful/sitemapper/internal/logfields"
	"git.home.luguber.info/inful/sitemapper/internal/routes"
	"git.home.luguber.info/inful/sitemapper/internal/translate"
	"git.home.luguber.info/inful/sitemapper/internal/util/sets"
)

// Entry is one fully resolved, locale-specific sitemap record.
type Entry struct {
	URL        string
	LastMod    string // date-only ISO; empty when no layer resolved a value
	Alternates []Alternate
}

// Assembler turns canonical entries into per-locale entry lists.
type Assembler struct {
	SiteURL  string // absolute site base, no trailing slash
	Paths    *translate.Paths
	Resolver *lastmod.Resolver
}

// Assemble builds the entry list for one target locale. Entries whose
// locale restriction excludes the target are skipped; duplicate URLs
// are dropped first-wins.
func (a *Assembler) Assemble(locale string, canonical []routes.CanonicalEntry) []Entry {
	seen := sets.New[string]()
	var out []Entry
	for _, ce := range canonical {
		if !ce.AvailableIn(locale) {
			continue
		}
		url := a.SiteURL + a.Paths.Localize(locale, ce.Path)
		if seen.Has(url) {
			continue
		}
		seen.Add(url)

		entry := Entry{URL: url}
		if t, ok := a.Resolver.Resolve(ce.Path, ce.LastMod, ce.SourceFile); ok {
			entry.LastMod = lastmod.Format(t)
		}
		out = append(out, entry)
	}
	slog.Debug("Assembled sitemap entries", logfields.Locale(locale), logfields.Count(len(out)))
	return out
}

// MaxLastMod returns the latest lastmod across entries, or "" when none
// carries one. Date-only strings compare correctly as strings.
func MaxLastMod(entries []Entry) string {
	max := ""
	for _, e := range entries {
		if e.LastMod > max {
			max = e.LastMod
		}
	}
	return max
}
