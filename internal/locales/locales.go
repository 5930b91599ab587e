// Package locales models the fixed locale set a build operates on.
//
// One locale is designated the default. Canonical paths are always in the
// default locale and carry no prefix; every other locale prefixes its
// localized paths with "/<locale>".
package locales

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Set is the immutable locale universe for one build.
type Set struct {
	all []string
	def string
}

// NewSet builds a locale set. The default locale must be a member of all.
// Every code must parse as a BCP 47 tag.
func NewSet(all []string, def string) (*Set, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("locale set is empty")
	}
	if def == "" {
		return nil, fmt.Errorf("default locale is empty")
	}
	found := false
	for _, l := range all {
		if _, err := language.Parse(l); err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", l, err)
		}
		if l == def {
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("default locale %q not in locale list", def)
	}
	out := make([]string, len(all))
	copy(out, all)
	return &Set{all: out, def: def}, nil
}

// All returns the locale codes in declaration order.
func (s *Set) All() []string {
	out := make([]string, len(s.all))
	copy(out, s.all)
	return out
}

// Default returns the default locale code.
func (s *Set) Default() string { return s.def }

// IsDefault reports whether locale is the default locale.
func (s *Set) IsDefault(locale string) bool { return locale == s.def }

// Contains reports whether locale is a member of the set.
func (s *Set) Contains(locale string) bool {
	for _, l := range s.all {
		if l == locale {
			return true
		}
	}
	return false
}

// Prefix returns the URL path prefix for a locale: "" for the default
// locale, "/<locale>" otherwise.
func (s *Set) Prefix(locale string) string {
	if locale == s.def {
		return ""
	}
	return "/" + locale
}

// StripPrefix removes the locale prefix from a localized path. Paths in
// the default locale carry no prefix and pass through unchanged.
func (s *Set) StripPrefix(locale, path string) string {
	if locale == s.def {
		return path
	}
	p := strings.TrimPrefix(path, "/"+locale)
	if p == "" {
		return "/"
	}
	return p
}
