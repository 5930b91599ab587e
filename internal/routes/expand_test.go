package routes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandStaticAndDynamic(t *testing.T) {
	reg := NewRegistry()
	reg.Register("/blog/[slug]", func(ctx context.Context) ([]CanonicalEntry, error) {
		return []CanonicalEntry{
			{Path: "/blog/hello-world", Locales: []string{"en", "fr"}},
			{Path: "/blog/second-post"},
		}, nil
	})

	templates := []Template{
		{Path: "/", SourceFile: "app/[locale]/page.tsx"},
		{Path: "/blog/[slug]", Dynamic: true},
		{Path: "/docs/[slug]", Dynamic: true}, // no generator registered
	}

	entries := Expand(context.Background(), templates, reg, CompareNormalizer{})
	require.Len(t, entries, 3)
	require.Equal(t, "/", entries[0].Path)
	require.Equal(t, "app/[locale]/page.tsx", entries[0].SourceFile)
	require.Equal(t, "/blog/hello-world", entries[1].Path)
	require.Equal(t, []string{"en", "fr"}, entries[1].Locales)

	for _, e := range entries {
		require.NotContains(t, e.Path, "/docs/", "missing generator must contribute nothing")
	}
}

func TestExpandGeneratorFailureIsIsolated(t *testing.T) {
	reg := NewRegistry()
	reg.Register("/broken/[slug]", func(ctx context.Context) ([]CanonicalEntry, error) {
		return nil, errors.New("boom")
	})
	reg.Register("/blog/[slug]", func(ctx context.Context) ([]CanonicalEntry, error) {
		return []CanonicalEntry{{Path: "/blog/survivor"}}, nil
	})

	templates := []Template{
		{Path: "/broken/[slug]", Dynamic: true},
		{Path: "/blog/[slug]", Dynamic: true},
	}
	entries := Expand(context.Background(), templates, reg, CompareNormalizer{})
	require.Len(t, entries, 1)
	require.Equal(t, "/blog/survivor", entries[0].Path)
}

func TestExpandNormalizesAndDeduplicates(t *testing.T) {
	reg := NewRegistry()
	reg.Register("/compare/[slug]", func(ctx context.Context) ([]CanonicalEntry, error) {
		return []CanonicalEntry{
			{Path: "/compare/kling-vs-sora"},
			{Path: "/compare/sora-vs-kling"}, // symmetric duplicate
		}, nil
	})

	templates := []Template{{Path: "/compare/[slug]", Dynamic: true}}
	entries := Expand(context.Background(), templates, reg, CompareNormalizer{Prefix: "/compare"})
	require.Len(t, entries, 1)
	require.Equal(t, "/compare/kling-vs-sora", entries[0].Path)
}

func TestExpandFirstOccurrenceWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register("/blog/[slug]", func(ctx context.Context) ([]CanonicalEntry, error) {
		return []CanonicalEntry{{Path: "/models", Locales: []string{"en"}}}, nil
	})
	templates := []Template{
		{Path: "/models", SourceFile: "app/[locale]/models/page.tsx"},
		{Path: "/blog/[slug]", Dynamic: true},
	}
	entries := Expand(context.Background(), templates, reg, CompareNormalizer{})
	require.Len(t, entries, 1)
	require.Nil(t, entries[0].Locales, "static entry discovered first must win")
}
