// Package routes discovers canonical route templates, expands dynamic
// templates through registered generators, and normalizes the resulting
// canonical path entries. All paths in this package are canonical
// (default-locale) paths; localization happens downstream.
package routes

import (
	"sort"
	"strings"
	"time"
)

// Template is one canonical route pattern exposed by the page layer.
type Template struct {
	// Path is the canonical route pattern, e.g. "/blog/[slug]".
	Path string
	// Dynamic is true when the pattern contains a placeholder segment.
	Dynamic bool
	// SourceFile optionally references the originating page source,
	// used only for last-modified lookup.
	SourceFile string
}

// CanonicalEntry is one concrete canonical path bound for the sitemap.
type CanonicalEntry struct {
	Path string
	// LastMod is an optional explicit timestamp hint; zero means the
	// resolver decides.
	LastMod time.Time
	// Locales optionally restricts the entry to a subset of locales;
	// nil means available everywhere.
	Locales []string
	// SourceFile optionally references the page source for
	// last-modified resolution.
	SourceFile string
}

// AvailableIn reports whether the entry is available in the locale.
func (e CanonicalEntry) AvailableIn(locale string) bool {
	if e.Locales == nil {
		return true
	}
	for _, l := range e.Locales {
		if l == locale {
			return true
		}
	}
	return false
}

// isDynamicSegment reports whether a path segment is a placeholder like
// "[slug]" or "[...rest]".
func isDynamicSegment(seg string) bool {
	return strings.HasPrefix(seg, "[") && strings.HasSuffix(seg, "]")
}

// isDynamicPath reports whether any segment of the path is a placeholder.
func isDynamicPath(path string) bool {
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if isDynamicSegment(seg) {
			return true
		}
	}
	return false
}

// sortTemplates orders templates root-first, then lexicographically.
func sortTemplates(ts []Template) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Path == "/" {
			return ts[j].Path != "/"
		}
		if ts[j].Path == "/" {
			return false
		}
		return ts[i].Path < ts[j].Path
	})
}
