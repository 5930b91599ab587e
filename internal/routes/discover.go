package routes

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/sitemapper/internal/logfields"
)

// Strategy discovers route templates from one source. A strategy that
// finds nothing returns an empty slice and no error so the next
// strategy in line gets its turn.
type Strategy interface {
	Name() string
	Discover() ([]Template, error)
}

// Discover runs the ordered strategy list and returns the first
// non-empty result, sorted root-first. An error from a strategy aborts
// discovery: a present-but-malformed input is a build problem, not a
// fall-through.
func Discover(strategies ...Strategy) ([]Template, error) {
	for _, s := range strategies {
		templates, err := s.Discover()
		if err != nil {
			return nil, fmt.Errorf("route discovery (%s): %w", s.Name(), err)
		}
		if len(templates) == 0 {
			slog.Debug("Discovery strategy found no routes", logfields.Strategy(s.Name()))
			continue
		}
		slog.Info("Routes discovered", logfields.Strategy(s.Name()), logfields.Count(len(templates)))
		sortTemplates(templates)
		return templates, nil
	}
	return nil, nil
}
