package sitemap

import (
	"git.home.luguber.info/inful/sitemapper/internal/lastmod"
	"git.home.luguber.info/inful/sitemapper/internal/locales"
	"git.home.luguber.info/inful/sitemapper/internal/translate"
)

// AssembleCollection builds the dedicated sitemap for an entry-keyed
// collection: one <url> per locale variant of each item, each carrying
// alternate links for every locale that has the item plus an x-default
// link pointing at the default-locale URL.
func (a *Assembler) AssembleCollection(route string, table *translate.EntryTable, ls *locales.Set) []Entry {
	var out []Entry
	for _, bucket := range table.Buckets() {
		available := bucket.Locales(ls.All())
		if len(available) == 0 {
			continue
		}
		canonicalPath := "/" + route + "/" + table.Slug(ls.Default(), bucket.CanonicalID)

		alternates := make([]Alternate, 0, len(available)+1)
		for _, l := range available {
			alternates = append(alternates, Alternate{
				Rel:      "alternate",
				Hreflang: l,
				Href:     a.SiteURL + a.Paths.Localize(l, canonicalPath),
			})
		}
		alternates = append(alternates, Alternate{
			Rel:      "alternate",
			Hreflang: "x-default",
			Href:     a.SiteURL + a.Paths.Localize(ls.Default(), canonicalPath),
		})

		var lm string
		if t, ok := a.Resolver.Resolve(canonicalPath, bucket.LastMod, ""); ok {
			lm = lastmod.Format(t)
		}
		for _, l := range available {
			out = append(out, Entry{
				URL:        a.SiteURL + a.Paths.Localize(l, canonicalPath),
				LastMod:    lm,
				Alternates: alternates,
			})
		}
	}
	return out
}
