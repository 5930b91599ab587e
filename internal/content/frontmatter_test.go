package content

import (
	"errors"
	"testing"
)

func TestSplitFrontmatter(t *testing.T) {
	fm, had, err := splitFrontmatter([]byte("---\nslug: x\n---\nbody\n"))
	if err != nil || !had {
		t.Fatalf("split failed: had=%v err=%v", had, err)
	}
	if string(fm) != "slug: x\n" {
		t.Errorf("frontmatter = %q", fm)
	}
}

func TestSplitFrontmatterNone(t *testing.T) {
	_, had, err := splitFrontmatter([]byte("just a body\n"))
	if err != nil || had {
		t.Fatalf("expected no frontmatter: had=%v err=%v", had, err)
	}
}

func TestSplitFrontmatterMissingClose(t *testing.T) {
	_, _, err := splitFrontmatter([]byte("---\nslug: x\n"))
	if !errors.Is(err, ErrMissingClosingDelimiter) {
		t.Fatalf("err = %v, want ErrMissingClosingDelimiter", err)
	}
}

func TestSplitFrontmatterCRLF(t *testing.T) {
	fm, had, err := splitFrontmatter([]byte("---\r\nslug: x\r\n---\r\nbody\r\n"))
	if err != nil || !had {
		t.Fatalf("split failed: had=%v err=%v", had, err)
	}
	if string(fm) != "slug: x\r\n" {
		t.Errorf("frontmatter = %q", fm)
	}
}
