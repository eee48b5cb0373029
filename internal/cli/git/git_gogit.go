// --- START OF FINAL REVISED FILE internal/cli/git/git_gogit.go ---
package git

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ShortHashLength is the number of hex characters used for a git-derived build number.
const ShortHashLength = 7

// ErrGitOperation indicates a failure during a Git operation performed via the GitClient:
// the path is not inside a repository, HEAD is unborn, or go-git failed.
var ErrGitOperation = errors.New("git operation failed")

// Errorf returns a formatted error that wraps ErrGitOperation.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrGitOperation}, args...)...)
}

// GoGitClient resolves repository information using go-git, without a git binary.
type GoGitClient struct {
	logger *slog.Logger
}

// NewGoGitClient creates a new GoGitClient.
func NewGoGitClient(loggerHandler slog.Handler) *GoGitClient {
	if loggerHandler == nil {
		loggerHandler = slog.NewTextHandler(io.Discard, nil)
	}
	logger := slog.New(loggerHandler).With(slog.String("component", "gitClient"), slog.String("backend", "go-git"))
	return &GoGitClient{logger: logger}
}

// openRepo opens the repository containing repoPath, searching parent directories.
func (c *GoGitClient) openRepo(repoPath string) (*git.Repository, error) {
	absRepoPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, Errorf("failed to get absolute path for repository '%s': %w", repoPath, err)
	}
	repo, err := git.PlainOpenWithOptions(absRepoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, Errorf("repository not found at or above path '%s': %w", absRepoPath, err)
		}
		return nil, Errorf("failed to open repository at '%s': %w", absRepoPath, err)
	}
	return repo, nil
}

// HeadRevision returns the abbreviated hash of the commit HEAD points at.
func (c *GoGitClient) HeadRevision(repoPath string) (string, error) {
	logArgs := []any{slog.String("repo", repoPath)}

	repo, err := c.openRepo(repoPath)
	if err != nil {
		c.logger.Debug("Failed to open repository", append(logArgs, slog.Any("error", err))...)
		return "", err
	}

	headRef, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", Errorf("HEAD has no commits yet in '%s': %w", repoPath, err)
		}
		return "", Errorf("failed to get HEAD reference for repository '%s': %w", repoPath, err)
	}

	hash := headRef.Hash().String()
	if len(hash) > ShortHashLength {
		hash = hash[:ShortHashLength]
	}
	c.logger.Debug("Resolved HEAD revision", append(logArgs, slog.String("revision", hash), slog.String("ref", headRef.Name().String()))...)
	return hash, nil
}

// --- END OF FINAL REVISED FILE internal/cli/git/git_gogit.go ---
