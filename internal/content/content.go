// Package content scans per-locale content collections and extracts the
// slug and date metadata the translation and sitemap layers consume.
// Rendering of entry bodies is someone else's job; this package never
// looks past the frontmatter.
package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/sitemapper/internal/logfields"
)

// Item is one content entry in one locale.
type Item struct {
	Locale      string
	Slug        string
	CanonicalID string // declared canonical id, may be empty
	File        string // absolute path to the source file
	LastMod     time.Time // best date candidate for this variant; zero if none
}

// Scanner lists and reads collection entries. The default implementation
// reads the real filesystem; tests substitute an in-memory one.
type Scanner struct {
	// UseMtime enables the file-modification-time date candidate for
	// entries that declare no usable date.
	UseMtime bool
}

// Scan reads every entry of a collection for the given locales. The
// collection root holds one subdirectory per locale. A missing locale
// directory is not an error: that locale simply has no entries. Files
// are visited in sorted name order so conflict resolution is
// deterministic.
func (s *Scanner) Scan(root string, locs []string) ([]Item, error) {
	var items []Item
	for _, locale := range locs {
		dir := filepath.Join(root, locale)
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				slog.Debug("No collection directory for locale", logfields.Locale(locale), logfields.Path(dir))
				continue
			}
			return nil, fmt.Errorf("failed to read collection dir %s: %w", dir, err)
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
		for _, de := range entries {
			if de.IsDir() || !isMarkdown(de.Name()) {
				continue
			}
			file := filepath.Join(dir, de.Name())
			item, err := s.readItem(locale, file, de.Name())
			if err != nil {
				slog.Warn("Skipping unreadable content entry", logfields.File(file), logfields.Error(err))
				continue
			}
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *Scanner) readItem(locale, file, name string) (Item, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return Item{}, err
	}
	fm, had, err := splitFrontmatter(raw)
	if err != nil {
		return Item{}, err
	}
	fields := map[string]any{}
	if had {
		if fields, err = parseMeta(fm); err != nil {
			return Item{}, err
		}
	}

	slug := stringField(fields, "slug")
	if slug == "" {
		slug = strings.TrimSuffix(name, filepath.Ext(name))
	}

	item := Item{
		Locale:      locale,
		Slug:        slug,
		CanonicalID: stringField(fields, "canonical"),
		File:        file,
		LastMod:     dateCandidate(fields),
	}
	if item.LastMod.IsZero() && s.UseMtime {
		if fi, err := os.Stat(file); err == nil {
			item.LastMod = fi.ModTime().UTC()
		}
	}
	return item, nil
}

// dateCandidate picks the best declared date: updated beats modified
// beats the publish date. Unparseable values count as absent.
func dateCandidate(fields map[string]any) time.Time {
	for _, key := range []string{"updated", "modified", "date"} {
		if t, ok := parseDate(fields[key]); ok {
			return t
		}
	}
	return time.Time{}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d.UTC(), true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(d)); err == nil {
				return t.UTC(), true
			}
		}
	}
	return time.Time{}, false
}

func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown" || ext == ".mdx"
}
