package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitemapper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
site_url: https://example.com
locales: [en, fr]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "en", cfg.DefaultLocale)
	require.Equal(t, DefaultTolerance, cfg.Validation.EffectiveTolerance())
	require.Equal(t, "./public", cfg.Output.Directory)
	require.Contains(t, cfg.Pages.Patterns, "page.tsx")
	require.True(t, cfg.MtimeFallbackEnabled(), "mtime fallback defaults on outside production")
}

func TestLoadExplicitZeroTolerance(t *testing.T) {
	path := writeConfig(t, `
site_url: https://example.com
locales: [en]
validation:
  tolerance: 0
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 0, cfg.Validation.EffectiveTolerance())
}

func TestLoadRejectsMissingDefaultLocale(t *testing.T) {
	path := writeConfig(t, `
site_url: https://example.com
default_locale: de
locales: [en, fr]
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsSegmentWithoutDefaultSpelling(t *testing.T) {
	path := writeConfig(t, `
site_url: https://example.com
locales: [en, fr]
segments:
  - fr: modeles
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestProductionDisablesMtimeFallback(t *testing.T) {
	path := writeConfig(t, `
site_url: https://example.com
locales: [en]
production: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.False(t, cfg.MtimeFallbackEnabled())
}

func TestProductionMtimeExplicitOverride(t *testing.T) {
	path := writeConfig(t, `
site_url: https://example.com
locales: [en]
production: true
lastmod:
  mtime_fallback: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.MtimeFallbackEnabled())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvTolerance, "7")
	t.Setenv(EnvStrict, "true")
	t.Setenv(EnvFallbackDate, "2024-06-01")

	path := writeConfig(t, `
site_url: https://example.com
locales: [en]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Validation.EffectiveTolerance())
	require.True(t, cfg.Validation.Strict)
	require.Equal(t, "2024-06-01", cfg.LastMod.Fallback)
}

func TestInitRefusesExistingFile(t *testing.T) {
	path := writeConfig(t, "site_url: https://example.com\n")
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotEmpty(t, cfg.SiteURL)
}
