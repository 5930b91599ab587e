package config

import (
	"fmt"
	"os"
)

const exampleConfig = `# sitemapper configuration
site_url: https://example.com
default_locale: en
locales: [en, fr, de]

# Static segment translations. The default-locale spelling is the
# canonical segment; omitted locales fall back to it.
segments:
  - en: models
    fr: modeles
    de: modelle
  - en: pricing
    fr: tarifs
    de: preise

# Entry-keyed content collections. Each locale has a subdirectory of
# markdown files with slug/date frontmatter under dir.
collections:
  blog:
    route: blog
    dir: content/blog
    sitemap: sitemap-blog.xml

comparison_prefix: /compare
comparisons:
  - [kling, sora]

pages:
  manifest: .build/route-manifest.json
  root: app/[locale]

lastmod:
  overrides: {}
  # fallback: 2025-01-01

validation:
  tolerance: 3
  strict: false

output:
  directory: ./public
`

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
