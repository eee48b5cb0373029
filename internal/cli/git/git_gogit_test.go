// --- START OF FINAL REVISED FILE internal/cli/git/git_gogit_test.go ---
package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestGitRepo initializes a repository in a temp dir with a single commit and
// returns the repo root and the full commit hash.
func setupTestGitRepo(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cucumber.json"), []byte("[]"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("cucumber.json")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir, hash.String()
}

func TestGoGitClient_HeadRevision(t *testing.T) {
	dir, fullHash := setupTestGitRepo(t)
	client := NewGoGitClient(nil)

	rev, err := client.HeadRevision(dir)
	require.NoError(t, err)
	assert.Len(t, rev, ShortHashLength)
	assert.Equal(t, fullHash[:ShortHashLength], rev)
}

func TestGoGitClient_HeadRevision_Subdirectory(t *testing.T) {
	dir, fullHash := setupTestGitRepo(t)
	sub := filepath.Join(dir, "target", "reports")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	rev, err := NewGoGitClient(nil).HeadRevision(sub)
	require.NoError(t, err)
	assert.Equal(t, fullHash[:ShortHashLength], rev)
}

func TestGoGitClient_HeadRevision_NotARepo(t *testing.T) {
	rev, err := NewGoGitClient(nil).HeadRevision(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGitOperation)
	assert.Empty(t, rev)
}

func TestGoGitClient_HeadRevision_NoCommits(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = NewGoGitClient(nil).HeadRevision(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGitOperation)
	assert.Contains(t, err.Error(), "no commits")
}

// --- END OF FINAL REVISED FILE internal/cli/git/git_gogit_test.go ---
