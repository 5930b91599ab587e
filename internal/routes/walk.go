package routes

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DirReader lists one directory level. The production implementation
// reads the real filesystem; tests substitute an in-memory tree.
type DirReader interface {
	ReadDir(dir string) ([]DirEntry, error)
}

// DirEntry is the minimal directory listing record the walk needs.
type DirEntry struct {
	Name  string
	IsDir bool
}

// OSDirReader reads directories from the local filesystem.
type OSDirReader struct{}

func (OSDirReader) ReadDir(dir string) ([]DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, DirEntry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return out, nil
}

// WalkStrategy derives route templates by walking the locale-root page
// tree. Every directory containing a recognized page file contributes
// one template derived from its path relative to the root, with the
// same structural-segment filtering the manifest strategy applies.
type WalkStrategy struct {
	// Root is the locale-root page directory, e.g. "app/[locale]".
	Root string
	// Patterns are the page filenames to recognize.
	Patterns []string
	// Reader lists directories; defaults to the local filesystem.
	Reader DirReader
}

func (w *WalkStrategy) Name() string { return "walk" }

func (w *WalkStrategy) Discover() ([]Template, error) {
	if w.Root == "" {
		return nil, nil
	}
	reader := w.Reader
	if reader == nil {
		reader = OSDirReader{}
	}

	byPath := map[string]Template{}

	// Worklist over relative directory paths; "" is the root itself.
	worklist := []string{""}
	for len(worklist) > 0 {
		rel := worklist[0]
		worklist = worklist[1:]

		entries, err := reader.ReadDir(filepath.Join(w.Root, filepath.FromSlash(rel)))
		if err != nil {
			if os.IsNotExist(err) && rel == "" {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to list page directory %q: %w", rel, err)
		}
		for _, e := range entries {
			if e.IsDir {
				worklist = append(worklist, path.Join(rel, e.Name))
				continue
			}
			if !w.isPageFile(e.Name) {
				continue
			}
			canonical := canonicalFromSegments(strings.Split(rel, "/"))
			t := Template{
				Path:       canonical,
				Dynamic:    isDynamicPath(canonical),
				SourceFile: filepath.Join(w.Root, filepath.FromSlash(path.Join(rel, e.Name))),
			}
			if _, ok := byPath[canonical]; !ok {
				byPath[canonical] = t
			}
		}
	}

	templates := make([]Template, 0, len(byPath))
	for _, t := range byPath {
		templates = append(templates, t)
	}
	return templates, nil
}

func (w *WalkStrategy) isPageFile(name string) bool {
	for _, p := range w.Patterns {
		if name == p {
			return true
		}
	}
	return false
}
