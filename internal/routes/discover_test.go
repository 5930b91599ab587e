package routes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalFromSegments(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{[]string{"", "[locale]", "(marketing)", "models", "page"}, "/models"},
		{[]string{"", "[locale]", "page"}, "/"},
		{[]string{"", "[locale]", "blog", "[slug]", "page"}, "/blog/[slug]"},
		{[]string{"", "[locale]", "@modal", "models", "page"}, "/models"},
		{[]string{"", "[locale]", "(shop)", "(eu)", "pricing", "default"}, "/pricing"},
	}
	for _, c := range cases {
		if got := canonicalFromSegments(c.in); got != c.want {
			t.Errorf("canonicalFromSegments(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestManifestStrategy(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "route-manifest.json")
	require.NoError(t, os.WriteFile(manifest, []byte(`{
		"/[locale]/page": "app/[locale]/page.tsx",
		"/[locale]/(marketing)/models/page": "app/[locale]/(marketing)/models/page.tsx",
		"/[locale]/blog/[slug]/page": "app/[locale]/blog/[slug]/page.tsx"
	}`), 0o644))

	s := &ManifestStrategy{Path: manifest}
	templates, err := s.Discover()
	require.NoError(t, err)
	sortTemplates(templates)

	require.Len(t, templates, 3)
	require.Equal(t, "/", templates[0].Path)
	require.False(t, templates[0].Dynamic)
	require.Equal(t, "/blog/[slug]", templates[1].Path)
	require.True(t, templates[1].Dynamic)
	require.Equal(t, "/models", templates[2].Path)
	require.Equal(t, "app/[locale]/(marketing)/models/page.tsx", templates[2].SourceFile)
}

func TestManifestStrategyAbsentFile(t *testing.T) {
	s := &ManifestStrategy{Path: filepath.Join(t.TempDir(), "missing.json")}
	templates, err := s.Discover()
	require.NoError(t, err)
	require.Empty(t, templates)
}

func TestManifestStrategyMalformed(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(manifest, []byte("not json"), 0o644))

	s := &ManifestStrategy{Path: manifest}
	_, err := s.Discover()
	require.Error(t, err)
}

// fakeDirReader serves an in-memory directory tree keyed by path.
type fakeDirReader map[string][]DirEntry

func (f fakeDirReader) ReadDir(dir string) ([]DirEntry, error) {
	entries, ok := f[filepath.ToSlash(dir)]
	if !ok {
		return nil, os.ErrNotExist
	}
	return entries, nil
}

func TestWalkStrategy(t *testing.T) {
	reader := fakeDirReader{
		"app/[locale]": {
			{Name: "page.tsx"},
			{Name: "(marketing)", IsDir: true},
			{Name: "blog", IsDir: true},
			{Name: "layout.tsx"},
		},
		"app/[locale]/(marketing)": {
			{Name: "models", IsDir: true},
		},
		"app/[locale]/(marketing)/models": {
			{Name: "page.tsx"},
		},
		"app/[locale]/blog": {
			{Name: "[slug]", IsDir: true},
		},
		"app/[locale]/blog/[slug]": {
			{Name: "page.tsx"},
		},
	}

	s := &WalkStrategy{Root: "app/[locale]", Patterns: []string{"page.tsx"}, Reader: reader}
	templates, err := s.Discover()
	require.NoError(t, err)
	sortTemplates(templates)

	require.Len(t, templates, 3)
	require.Equal(t, "/", templates[0].Path)
	require.Equal(t, "/blog/[slug]", templates[1].Path)
	require.True(t, templates[1].Dynamic)
	require.Equal(t, "/models", templates[2].Path)
}

func TestWalkStrategyMissingRoot(t *testing.T) {
	s := &WalkStrategy{Root: "does/not/exist", Patterns: []string{"page.tsx"}, Reader: fakeDirReader{}}
	templates, err := s.Discover()
	require.NoError(t, err)
	require.Empty(t, templates)
}

// emptyStrategy always finds nothing.
type emptyStrategy struct{}

func (emptyStrategy) Name() string                  { return "empty" }
func (emptyStrategy) Discover() ([]Template, error) { return nil, nil }

// fixedStrategy returns a fixed template list.
type fixedStrategy []Template

func (fixedStrategy) Name() string                    { return "fixed" }
func (f fixedStrategy) Discover() ([]Template, error) { return f, nil }

func TestDiscoverFirstNonEmptyWins(t *testing.T) {
	templates, err := Discover(
		emptyStrategy{},
		fixedStrategy{{Path: "/models"}, {Path: "/"}},
	)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	require.Equal(t, "/", templates[0].Path, "root sorts first")
	require.Equal(t, "/models", templates[1].Path)
}

func TestDiscoverAllEmpty(t *testing.T) {
	templates, err := Discover(emptyStrategy{}, emptyStrategy{})
	require.NoError(t, err)
	require.Empty(t, templates)
}
