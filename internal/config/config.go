// Package config loads and validates the sitemapper configuration
// document. Settings that operators commonly flip per environment
// (tolerance, strict mode, mtime fallback) can be overridden through
// SITEMAPPER_* environment variables after the YAML is parsed.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable override keys.
const (
	EnvTolerance    = "SITEMAPPER_TOLERANCE"
	EnvStrict       = "SITEMAPPER_STRICT"
	EnvMtime        = "SITEMAPPER_MTIME_FALLBACK"
	EnvFallbackDate = "SITEMAPPER_FALLBACK_DATE"
	EnvProduction   = "SITEMAPPER_PRODUCTION"
	EnvDisableGit   = "SITEMAPPER_DISABLE_GIT"
)

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	// Pick up .env files first; existing process env wins.
	_ = godotenv.Load(".env", ".env.local")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()
	config.applyEnvOverrides()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.DefaultLocale == "" {
		c.DefaultLocale = "en"
	}
	if len(c.Locales) == 0 {
		c.Locales = []string{c.DefaultLocale}
	}
	if len(c.Pages.Patterns) == 0 {
		c.Pages.Patterns = []string{"page.tsx", "page.jsx", "page.js", "page.mdx"}
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./public"
	}
	if c.LastMod.RepoPath == "" {
		c.LastMod.RepoPath = "."
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvTolerance); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Validation.Tolerance = &n
		}
	}
	if v := os.Getenv(EnvStrict); v != "" {
		c.Validation.Strict = isTruthy(v)
	}
	if v := os.Getenv(EnvMtime); v != "" {
		b := isTruthy(v)
		c.LastMod.MtimeFallback = &b
	}
	if v := os.Getenv(EnvFallbackDate); v != "" {
		c.LastMod.Fallback = v
	}
	if v := os.Getenv(EnvProduction); v != "" {
		c.Production = isTruthy(v)
	}
	if v := os.Getenv(EnvDisableGit); v != "" {
		c.LastMod.DisableGit = isTruthy(v)
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Validate checks the loaded document for structural problems that
// would silently corrupt the build.
func (c *Config) Validate() error {
	if c.SiteURL == "" {
		return fmt.Errorf("site_url is required")
	}
	if strings.HasSuffix(c.SiteURL, "/") {
		c.SiteURL = strings.TrimRight(c.SiteURL, "/")
	}
	hasDefault := false
	for _, l := range c.Locales {
		if l == c.DefaultLocale {
			hasDefault = true
			break
		}
	}
	if !hasDefault {
		return fmt.Errorf("default_locale %q must appear in locales", c.DefaultLocale)
	}
	for i, rec := range c.Segments {
		if rec[c.DefaultLocale] == "" {
			return fmt.Errorf("segments[%d]: missing %s spelling", i, c.DefaultLocale)
		}
	}
	if c.Validation.Tolerance != nil && *c.Validation.Tolerance < 0 {
		return fmt.Errorf("validation.tolerance must be non-negative")
	}
	for name, col := range c.Collections {
		if col.Route == "" {
			return fmt.Errorf("collection %q: route is required", name)
		}
		if col.Dir == "" {
			return fmt.Errorf("collection %q: dir is required", name)
		}
	}
	return nil
}
