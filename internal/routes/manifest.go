package routes

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ManifestStrategy reads a structured route manifest: a JSON object
// mapping internal route identifiers to page source file paths. An
// absent manifest file yields no result so discovery can fall back to
// the filesystem walk.
type ManifestStrategy struct {
	// Path is the manifest file location.
	Path string
}

func (m *ManifestStrategy) Name() string { return "manifest" }

func (m *ManifestStrategy) Discover() ([]Template, error) {
	if m.Path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(m.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read route manifest: %w", err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse route manifest: %w", err)
	}

	// Dedupe by canonical path, preferring entries that resolved a
	// source file.
	byPath := map[string]Template{}
	for routeID, sourceFile := range raw {
		canonical := canonicalFromSegments(strings.Split(routeID, "/"))
		t := Template{
			Path:       canonical,
			Dynamic:    isDynamicPath(canonical),
			SourceFile: sourceFile,
		}
		if prev, ok := byPath[canonical]; ok && prev.SourceFile != "" && t.SourceFile == "" {
			continue
		}
		byPath[canonical] = t
	}

	templates := make([]Template, 0, len(byPath))
	for _, t := range byPath {
		templates = append(templates, t)
	}
	return templates, nil
}
