package git

import (
	"context"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/pkg/errors"

	domainRepos "github.com/rios0rios0/ferrypick/internal/domain/repositories"
)

// WorkTreeRepository finds the root of the git working tree enclosing a directory.
type WorkTreeRepository struct {
	dir string
}

var _ domainRepos.WorkTreeRepository = (*WorkTreeRepository)(nil)

// NewWorkTreeRepository creates a WorkTreeRepository for the current directory.
func NewWorkTreeRepository() *WorkTreeRepository {
	return NewWorkTreeRepositoryAt(".")
}

// NewWorkTreeRepositoryAt creates a WorkTreeRepository that searches upwards from dir.
func NewWorkTreeRepositoryAt(dir string) *WorkTreeRepository {
	return &WorkTreeRepository{dir: dir}
}

// TopLevel is the equivalent of `git rev-parse --show-toplevel`.
func (r *WorkTreeRepository) TopLevel(_ context.Context) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(r.dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open git repository from %s", r.dir)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", errors.Wrap(err, "failed to get worktree")
	}

	root, err := filepath.Abs(worktree.Filesystem.Root())
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve worktree root")
	}

	// git reports the physical path, a symlinked checkout resolves to its target
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve symlinks in %s", root)
	}
	return resolved, nil
}
