package routes

import (
	"context"
	"log/slog"
	"sync"

	"git.home.luguber.info/inful/sitemapper/internal/logfields"
	"git.home.luguber.info/inful/sitemapper/internal/util/sets"
)

// Generator expands one dynamic route template into concrete canonical
// path entries. Generators are independent, side-effect-free reads and
// may run concurrently with each other.
type Generator func(ctx context.Context) ([]CanonicalEntry, error)

// Registry maps exact template strings to their generators.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry returns an empty generator registry.
func NewRegistry() *Registry {
	return &Registry{generators: map[string]Generator{}}
}

// Register binds a generator to a template string, replacing any
// previous binding.
func (r *Registry) Register(template string, g Generator) {
	r.generators[template] = g
}

// Lookup returns the generator registered for a template.
func (r *Registry) Lookup(template string) (Generator, bool) {
	g, ok := r.generators[template]
	return g, ok
}

// Expand turns discovered templates into the flat canonical entry list.
// Static templates map one-to-one. Dynamic templates run their
// registered generator; a missing generator or a generator failure
// skips that template with a warning and the rest of the build
// proceeds. Every produced path passes through the compare-slug
// normalizer before a global first-wins dedup.
func Expand(ctx context.Context, templates []Template, reg *Registry, norm CompareNormalizer) []CanonicalEntry {
	// Generators run concurrently; results keep template order so the
	// first-wins dedup is deterministic.
	perTemplate := make([][]CanonicalEntry, len(templates))
	var wg sync.WaitGroup
	for i, t := range templates {
		if !t.Dynamic {
			perTemplate[i] = []CanonicalEntry{{Path: t.Path, SourceFile: t.SourceFile}}
			continue
		}
		gen, ok := reg.Lookup(t.Path)
		if !ok {
			slog.Warn("No generator registered for dynamic route, skipping", logfields.Template(t.Path))
			continue
		}
		wg.Add(1)
		go func(i int, t Template, gen Generator) {
			defer wg.Done()
			entries, err := gen(ctx)
			if err != nil {
				slog.Warn("Dynamic route generator failed, skipping template",
					logfields.Template(t.Path), logfields.Error(err))
				return
			}
			perTemplate[i] = entries
		}(i, t, gen)
	}
	wg.Wait()

	seen := sets.New[string]()
	var out []CanonicalEntry
	for _, entries := range perTemplate {
		for _, e := range entries {
			e.Path = norm.Normalize(e.Path)
			if seen.Has(e.Path) {
				continue
			}
			seen.Add(e.Path)
			out = append(out, e)
		}
	}
	return out
}
