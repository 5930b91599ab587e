package lastmod

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func commitFile(t *testing.T, wt *git.Worktree, dir, name, content string, when time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	_, err := wt.Add(name)
	require.NoError(t, err)
	_, err = wt.Commit("update "+name, &git.CommitOptions{
		Author:    &object.Signature{Name: "test", Email: "test@example.com", When: when},
		Committer: &object.Signature{Name: "test", Email: "test@example.com", When: when},
	})
	require.NoError(t, err)
}

func TestGitHistorianLastCommit(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	first := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	second := time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC)
	commitFile(t, wt, dir, "page.tsx", "v1", first)
	commitFile(t, wt, dir, "other.tsx", "v1", second)

	h := NewGitHistorian(dir)

	got, err := h.LastCommit(filepath.Join(dir, "page.tsx"))
	require.NoError(t, err)
	require.True(t, got.Equal(first), "got %v, want %v", got, first)

	got, err = h.LastCommit(filepath.Join(dir, "other.tsx"))
	require.NoError(t, err)
	require.True(t, got.Equal(second), "got %v, want %v", got, second)
}

func TestGitHistorianUntrackedFile(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	commitFile(t, wt, dir, "tracked.tsx", "v1", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "untracked.tsx"), []byte("x"), 0o644))

	h := NewGitHistorian(dir)
	_, err = h.LastCommit(filepath.Join(dir, "untracked.tsx"))
	require.Error(t, err)
}

func TestGitHistorianNoRepository(t *testing.T) {
	h := NewGitHistorian(t.TempDir())
	_, err := h.LastCommit("anything.tsx")
	require.Error(t, err)
}
