package git

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// ErrNotARepository indicates that no repository contains the given path
var ErrNotARepository = errors.New("not a git repository")

// Repository wraps a go-git repository for read-only inspection
type Repository struct {
	*git.Repository
	path string
}

// OpenRepository opens the git repository containing path
func OpenRepository(path string) (*Repository, error) {
	// Resolve to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", absPath, ErrNotARepository)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// Path returns the path the repository was opened from
func (r *Repository) Path() string {
	return r.path
}

// HasRemote reports whether a remote with the given name is configured
func (r *Repository) HasRemote(name string) (bool, error) {
	_, err := r.Remote(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, git.ErrRemoteNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to read remote %s: %w", name, err)
}

// HeadShortHash returns the abbreviated hash of HEAD
func (r *Repository) HeadShortHash() (string, error) {
	ref, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	hash := ref.Hash().String()
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return hash, nil
}
