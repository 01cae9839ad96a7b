// Package git provides the repository operations tagrel needs: repo
// detection, tag inspection, commit-log retrieval, and tag
// creation/push. It uses the go-git library for read-only operations
// (repo detection, tag listing) and falls back to the git CLI for the
// rest — "describe" has no go-git equivalent, and pushing through the
// CLI inherits the user's SSH agent and credential helpers.
package git

import (
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"
)

// debugLogger is a function that logs debug messages when debug mode
// is enabled. By default it is a no-op.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens the git repository containing path, traversing up
// the directory tree to find the repository root. An empty path means
// the current working directory.
func openRepo(path string) (*gogit.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// IsRepository checks whether the current directory is inside a git
// repository.
func IsRepository() bool {
	_, err := openRepo("")
	result := err == nil
	logDebug("[git] IsRepository: %v", result)
	return result
}

// RepositoryRoot returns the absolute path of the repository root for
// the current working directory.
func RepositoryRoot() (string, error) {
	repo, err := openRepo("")
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	root := worktree.Filesystem.Root()
	logDebug("[git] RepositoryRoot: %s", root)
	return root, nil
}
