// Package build wires the translation tables, route discovery, dynamic
// expansion, last-modified resolution and sitemap assembly into one
// build invocation. Everything is computed once per Engine and
// discarded with it; there is no state between builds beyond the files
// written to the output directory.
package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitemapper/internal/config"
	"git.home.luguber.info/inful/sitemapper/internal/content"
	"git.home.luguber.info/inful/sitemapper/internal/lastmod"
	"git.home.luguber.info/inful/sitemapper/internal/locales"
	"git.home.luguber.info/inful/sitemapper/internal/logfields"
	"git.home.luguber.info/inful/sitemapper/internal/routes"
	"git.home.luguber.info/inful/sitemapper/internal/sitemap"
	"git.home.luguber.info/inful/sitemapper/internal/translate"
)

// Engine performs one sitemap build.
type Engine struct {
	cfg     *config.Config
	buildID string

	locales  *locales.Set
	segments *translate.SegmentTable
	entries  map[string]*translate.EntryTable // collection name -> table
	paths    *translate.Paths
	registry *routes.Registry
	resolver *lastmod.Resolver
	norm     routes.CompareNormalizer

	canonical cell[[]routes.CanonicalEntry]
}

// New scans content collections, builds the translation tables and
// registers the built-in dynamic route generators. The canonical entry
// list itself is computed lazily, once, by the first caller that needs
// it.
func New(cfg *config.Config) (*Engine, error) {
	ls, err := locales.NewSet(cfg.Locales, cfg.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale configuration: %w", err)
	}

	e := &Engine{
		cfg:      cfg,
		buildID:  uuid.NewString(),
		locales:  ls,
		segments: translate.NewSegmentTable(cfg.DefaultLocale, cfg.Segments),
		entries:  map[string]*translate.EntryTable{},
		registry: routes.NewRegistry(),
		norm:     routes.CompareNormalizer{Prefix: cfg.ComparisonPrefix},
	}

	scanner := &content.Scanner{UseMtime: cfg.MtimeFallbackEnabled()}
	for name, col := range cfg.Collections {
		items, err := scanner.Scan(col.Dir, ls.All())
		if err != nil {
			return nil, fmt.Errorf("failed to scan collection %s: %w", name, err)
		}
		e.entries[name] = translate.NewEntryTable(cfg.DefaultLocale, items)
		slog.Info("Content collection scanned",
			logfields.BuildID(e.buildID),
			logfields.Collection(name),
			logfields.Count(len(items)))
	}

	// The path translator special-cases one entry-keyed route. With
	// several collections the first by name wins; the others still
	// localize their first segment through the segment table.
	entryRoute, entryTable := e.primaryCollection()
	e.paths = translate.NewPaths(ls, e.segments, entryTable, entryRoute)

	var historian lastmod.Historian
	if !cfg.LastMod.DisableGit {
		historian = lastmod.NewGitHistorian(cfg.LastMod.RepoPath)
	}
	var fallback time.Time
	if cfg.LastMod.Fallback != "" {
		t, err := time.Parse(lastmod.DateLayout, cfg.LastMod.Fallback)
		if err != nil {
			return nil, fmt.Errorf("invalid lastmod.fallback: %w", err)
		}
		fallback = t.UTC()
	}
	e.resolver = lastmod.NewResolver(lastmod.Options{
		Overrides: cfg.LastMod.Overrides,
		Historian: historian,
		Fallback:  fallback,
		UseMtime:  cfg.MtimeFallbackEnabled(),
	})

	e.registerGenerators()
	return e, nil
}

// Locales exposes the build's locale set.
func (e *Engine) Locales() *locales.Set { return e.locales }

// Registry exposes the generator registry so callers can bind
// additional dynamic routes before generating.
func (e *Engine) Registry() *routes.Registry { return e.registry }

func (e *Engine) primaryCollection() (string, *translate.EntryTable) {
	names := make([]string, 0, len(e.entries))
	for name := range e.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		return e.cfg.Collections[name].Route, e.entries[name]
	}
	return "", nil
}

// registerGenerators binds the built-in dynamic route generators:
// one per entry-keyed collection and one for the configured
// comparison pairs.
func (e *Engine) registerGenerators() {
	for name, col := range e.cfg.Collections {
		table := e.entries[name]
		route := col.Route
		e.registry.Register("/"+route+"/[slug]", func(ctx context.Context) ([]routes.CanonicalEntry, error) {
			var out []routes.CanonicalEntry
			for _, b := range table.Buckets() {
				avail := b.Locales(e.locales.All())
				if len(avail) == 0 {
					continue
				}
				out = append(out, routes.CanonicalEntry{
					Path:    "/" + route + "/" + table.Slug(e.locales.Default(), b.CanonicalID),
					LastMod: b.LastMod,
					Locales: avail,
				})
			}
			return out, nil
		})
	}

	if e.cfg.ComparisonPrefix != "" && len(e.cfg.Comparisons) > 0 {
		prefix := e.cfg.ComparisonPrefix
		pairs := e.cfg.Comparisons
		e.registry.Register(prefix+"/[slug]", func(ctx context.Context) ([]routes.CanonicalEntry, error) {
			out := make([]routes.CanonicalEntry, 0, len(pairs))
			for _, p := range pairs {
				out = append(out, routes.CanonicalEntry{Path: prefix + "/" + p[0] + "-vs-" + p[1]})
			}
			return out, nil
		})
	}
}

// DiscoverTemplates runs the ordered discovery strategies.
func (e *Engine) DiscoverTemplates() ([]routes.Template, error) {
	return routes.Discover(
		&routes.ManifestStrategy{Path: e.cfg.Pages.Manifest},
		&routes.WalkStrategy{Root: e.cfg.Pages.Root, Patterns: e.cfg.Pages.Patterns},
	)
}

// CanonicalEntries returns the normalized, deduplicated canonical entry
// list. Concurrent callers share a single computation.
func (e *Engine) CanonicalEntries(ctx context.Context) ([]routes.CanonicalEntry, error) {
	return e.canonical.Do(func() ([]routes.CanonicalEntry, error) {
		templates, err := e.DiscoverTemplates()
		if err != nil {
			return nil, err
		}
		if len(templates) == 0 {
			slog.Warn("No route templates discovered", logfields.BuildID(e.buildID))
		}
		entries := routes.Expand(ctx, templates, e.registry, e.norm)
		slog.Info("Canonical entries computed",
			logfields.BuildID(e.buildID),
			slog.Int("templates", len(templates)),
			logfields.Count(len(entries)))
		return entries, nil
	})
}

// Validate runs the locale-count consistency check over the canonical
// entry list.
func (e *Engine) Validate(ctx context.Context) error {
	entries, err := e.CanonicalEntries(ctx)
	if err != nil {
		return err
	}
	return sitemap.ValidateCounts(entries, e.locales,
		e.cfg.Validation.EffectiveTolerance(), e.cfg.Validation.Strict)
}

// Generate runs the full build: canonical entries, validation, one
// sitemap document per locale, dedicated collection sitemaps and the
// sitemap index.
func (e *Engine) Generate(ctx context.Context) error {
	started := time.Now()
	entries, err := e.CanonicalEntries(ctx)
	if err != nil {
		return err
	}
	if err := sitemap.ValidateCounts(entries, e.locales,
		e.cfg.Validation.EffectiveTolerance(), e.cfg.Validation.Strict); err != nil {
		return err
	}

	outDir := e.cfg.Output.Directory
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	assembler := &sitemap.Assembler{SiteURL: e.cfg.SiteURL, Paths: e.paths, Resolver: e.resolver}

	var refs []sitemap.IndexRef
	total := 0
	for _, locale := range e.locales.All() {
		list := assembler.Assemble(locale, entries)
		total += len(list)
		filename := "sitemap-" + locale + ".xml"
		if err := e.writeURLSet(outDir, filename, list); err != nil {
			return err
		}
		refs = append(refs, sitemap.IndexRef{
			Loc:     e.cfg.SiteURL + "/" + filename,
			LastMod: e.fileLastMod(filename, list),
		})
	}

	collectionNames := make([]string, 0, len(e.cfg.Collections))
	for name := range e.cfg.Collections {
		collectionNames = append(collectionNames, name)
	}
	sort.Strings(collectionNames)
	for _, name := range collectionNames {
		col := e.cfg.Collections[name]
		if col.Sitemap == "" {
			continue
		}
		list := assembler.AssembleCollection(col.Route, e.entries[name], e.locales)
		if err := e.writeURLSet(outDir, col.Sitemap, list); err != nil {
			return err
		}
		refs = append(refs, sitemap.IndexRef{
			Loc:     e.cfg.SiteURL + "/" + col.Sitemap,
			LastMod: e.fileLastMod(col.Sitemap, list),
		})
	}

	data, err := sitemap.MarshalIndex(refs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "sitemap.xml"), data, 0o644); err != nil {
		return fmt.Errorf("failed to write sitemap index: %w", err)
	}

	slog.Info("Sitemap build complete",
		logfields.BuildID(e.buildID),
		slog.Int("locales", len(e.locales.All())),
		slog.Int("documents", len(refs)+1),
		logfields.Count(total),
		logfields.DurationMS(float64(time.Since(started).Milliseconds())))
	return nil
}

func (e *Engine) writeURLSet(outDir, filename string, list []sitemap.Entry) error {
	data, err := sitemap.MarshalURLSet(list)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, filename), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// fileLastMod resolves a per-document lastmod for the sitemap index: a
// manual override keyed by the output filename wins, otherwise the
// maximum lastmod across the document's own entries.
func (e *Engine) fileLastMod(filename string, list []sitemap.Entry) string {
	if t, ok := e.resolver.Override(filename); ok {
		return lastmod.Format(t)
	}
	return sitemap.MaxLastMod(list)
}
