package sitemap

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/sitemapper/internal/locales"
	"git.home.luguber.info/inful/sitemapper/internal/logfields"
	"git.home.luguber.info/inful/sitemapper/internal/routes"
)

// ErrLocaleDrift reports entry counts diverging across locales beyond
// the configured tolerance while strict mode is on.
var ErrLocaleDrift = fmt.Errorf("locale entry counts drifted beyond tolerance")

// ValidateCounts compares per-locale availability counts of the
// canonical entry list against the default locale. Entries without a
// locale restriction count for every locale. Drift beyond tolerance is
// a warning, promoted to a hard failure in strict mode. This is the
// only automatic cross-locale correctness check: locale coverage drifts
// silently as content lands in one locale but is never translated.
func ValidateCounts(entries []routes.CanonicalEntry, ls *locales.Set, tolerance int, strict bool) error {
	counts := map[string]int{}
	for _, e := range entries {
		for _, l := range ls.All() {
			if e.AvailableIn(l) {
				counts[l]++
			}
		}
	}

	base := counts[ls.Default()]
	var err error
	for _, l := range ls.All() {
		if ls.IsDefault(l) {
			continue
		}
		drift := counts[l] - base
		if drift < 0 {
			drift = -drift
		}
		if drift <= tolerance {
			continue
		}
		if strict {
			err = fmt.Errorf("%w: locale %s has %d entries, %s has %d (tolerance %d)",
				ErrLocaleDrift, l, counts[l], ls.Default(), base, tolerance)
			break
		}
		slog.Warn("Locale entry count drifted beyond tolerance",
			logfields.Locale(l),
			slog.Int("entries", counts[l]),
			slog.Int("default_entries", base),
			slog.Int("tolerance", tolerance))
	}
	return err
}
