package translate

import "testing"

func newTestSegments() *SegmentTable {
	return NewSegmentTable("en", []map[string]string{
		{"en": "models", "fr": "modeles", "de": "modelle"},
		{"en": "pricing", "fr": "tarifs"},
	})
}

func TestSegmentLocalized(t *testing.T) {
	st := newTestSegments()
	cases := []struct {
		locale, canonical, want string
	}{
		{"fr", "models", "modeles"},
		{"de", "models", "modelle"},
		{"de", "pricing", "pricing"}, // no de spelling, canonical fallback
		{"en", "models", "models"},   // default maps to itself
		{"fr", "unmapped", "unmapped"},
	}
	for _, c := range cases {
		if got := st.Localized(c.locale, c.canonical); got != c.want {
			t.Errorf("Localized(%s, %s) = %q, want %q", c.locale, c.canonical, got, c.want)
		}
	}
}

func TestSegmentCanonical(t *testing.T) {
	st := newTestSegments()
	cases := []struct {
		locale, localized, want string
	}{
		{"fr", "modeles", "models"},
		{"fr", "tarifs", "pricing"},
		{"fr", "inconnu", "inconnu"}, // unmapped falls back to input
		{"en", "models", "models"},
	}
	for _, c := range cases {
		if got := st.Canonical(c.locale, c.localized); got != c.want {
			t.Errorf("Canonical(%s, %s) = %q, want %q", c.locale, c.localized, got, c.want)
		}
	}
}
