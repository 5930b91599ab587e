package config

// Config is the top-level configuration document for a sitemap build.
type Config struct {
	SiteURL       string   `yaml:"site_url"`
	DefaultLocale string   `yaml:"default_locale"`
	Locales       []string `yaml:"locales"`

	// Segments is the static translation table: one record per
	// translatable concept, keyed by locale code. The default-locale
	// spelling is mandatory and acts as the canonical segment.
	Segments []map[string]string `yaml:"segments"`

	// Collections are entry-keyed content collections (e.g. blog).
	Collections map[string]Collection `yaml:"collections"`

	// Comparisons lists subject pairs rendered as two-sided compare
	// pages under ComparisonPrefix.
	ComparisonPrefix string      `yaml:"comparison_prefix"`
	Comparisons      [][2]string `yaml:"comparisons,omitempty"`

	Pages      PagesConfig      `yaml:"pages"`
	LastMod    LastModConfig    `yaml:"lastmod"`
	Validation ValidationConfig `yaml:"validation"`
	Output     OutputConfig     `yaml:"output"`

	// Production disables the file-mtime lastmod fallback unless the
	// lastmod section explicitly re-enables it.
	Production bool `yaml:"production,omitempty"`
}

// Collection describes one entry-keyed content collection.
type Collection struct {
	// Route is the canonical first path segment ("blog").
	Route string `yaml:"route"`
	// Dir holds per-locale subdirectories of markdown entries.
	Dir string `yaml:"dir"`
	// Sitemap, when set, emits a dedicated sitemap file for the
	// collection with hreflang alternate links.
	Sitemap string `yaml:"sitemap,omitempty"`
}

// PagesConfig controls route template discovery.
type PagesConfig struct {
	// Manifest is the path to the structured route manifest. Discovery
	// falls back to walking Root when the file is absent.
	Manifest string `yaml:"manifest,omitempty"`
	// Root is the locale-root page directory for the filesystem walk.
	Root string `yaml:"root,omitempty"`
	// Patterns are filenames recognized as page markers during the
	// walk. Defaults to page.tsx, page.jsx, page.js, page.mdx.
	Patterns []string `yaml:"patterns,omitempty"`
}

// LastModConfig controls last-modified resolution.
type LastModConfig struct {
	// Overrides maps a canonical path or an output sitemap filename to
	// a fixed date (YYYY-MM-DD).
	Overrides map[string]string `yaml:"overrides,omitempty"`
	// Fallback is used when the history query is disabled or fails.
	Fallback string `yaml:"fallback,omitempty"`
	// DisableGit turns off version-control history queries.
	DisableGit bool `yaml:"disable_git,omitempty"`
	// MtimeFallback enables the file-modification-time fallback. nil
	// means "enabled unless production".
	MtimeFallback *bool `yaml:"mtime_fallback,omitempty"`
	// RepoPath is the repository root for history queries. Defaults to
	// the working directory.
	RepoPath string `yaml:"repo_path,omitempty"`
}

// ValidationConfig controls the locale-count consistency check.
type ValidationConfig struct {
	// Tolerance is the permitted absolute entry-count drift between the
	// default locale and any other locale. nil means the default of 3;
	// an explicit 0 demands exact parity.
	Tolerance *int `yaml:"tolerance,omitempty"`
	// Strict promotes drift beyond tolerance to a build failure.
	Strict bool `yaml:"strict"`
}

// DefaultTolerance is the permitted locale-count drift when the config
// does not set one.
const DefaultTolerance = 3

// EffectiveTolerance resolves the optional tolerance against its default.
func (v ValidationConfig) EffectiveTolerance() int {
	if v.Tolerance != nil {
		return *v.Tolerance
	}
	return DefaultTolerance
}

// OutputConfig controls where sitemap documents are written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// MtimeFallbackEnabled resolves the tri-state mtime flag against the
// production switch.
func (c *Config) MtimeFallbackEnabled() bool {
	if c.LastMod.MtimeFallback != nil {
		return *c.LastMod.MtimeFallback
	}
	return !c.Production
}
