package lastmod

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	git "github.com/go-git/go-git/v5"
)

// GitHistorian answers last-commit-date queries from a local git
// repository via go-git. The repository is opened lazily on the first
// query and reused for the life of the build.
type GitHistorian struct {
	// RepoPath is any path inside the repository; the .git directory is
	// detected upward from it.
	RepoPath string

	mu      sync.Mutex
	repo    *git.Repository
	root    string
	openErr error
	opened  bool
}

// NewGitHistorian returns a historian rooted at repoPath.
func NewGitHistorian(repoPath string) *GitHistorian {
	return &GitHistorian{RepoPath: repoPath}
}

// LastCommit returns the committer date of the most recent commit
// touching file. The file path may be absolute or relative to the
// working directory.
func (h *GitHistorian) LastCommit(file string) (time.Time, error) {
	if err := h.open(); err != nil {
		return time.Time{}, err
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		return time.Time{}, err
	}
	rel, err := filepath.Rel(h.root, abs)
	if err != nil {
		return time.Time{}, fmt.Errorf("file %s is outside repository %s: %w", file, h.root, err)
	}
	rel = filepath.ToSlash(rel)

	iter, err := h.repo.Log(&git.LogOptions{
		FileName: &rel,
		Order:    git.LogOrderCommitterTime,
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("history query for %s: %w", rel, err)
	}
	defer iter.Close()

	commit, err := iter.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return time.Time{}, fmt.Errorf("no commits touch %s", rel)
		}
		return time.Time{}, err
	}
	return commit.Committer.When.UTC(), nil
}

func (h *GitHistorian) open() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.opened {
		return h.openErr
	}
	h.opened = true

	repo, err := git.PlainOpenWithOptions(h.RepoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		h.openErr = fmt.Errorf("failed to open repository at %s: %w", h.RepoPath, err)
		return h.openErr
	}
	h.repo = repo

	wt, err := repo.Worktree()
	if err != nil {
		h.openErr = fmt.Errorf("failed to resolve worktree: %w", err)
		return h.openErr
	}
	h.root, err = filepath.Abs(wt.Filesystem.Root())
	if err != nil {
		h.openErr = err
	}
	return h.openErr
}
