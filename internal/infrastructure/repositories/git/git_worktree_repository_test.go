//go:build unit

package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/ferrypick/internal/infrastructure/repositories/git"
)

func initRepository(t *testing.T, name string) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	root := filepath.Join(dir, name)
	_, err = gogit.PlainInit(root, false)
	require.NoError(t, err)
	return root
}

func TestWorkTreeRepositoryTopLevel(t *testing.T) {
	t.Parallel()

	t.Run("should return the repository root", func(t *testing.T) {
		t.Parallel()

		// given
		root := initRepository(t, "python3.10")
		repository := git.NewWorkTreeRepositoryAt(root)

		// when
		topLevel, err := repository.TopLevel(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, root, topLevel)
	})

	t.Run("should find the root from a nested directory", func(t *testing.T) {
		t.Parallel()

		// given
		root := initRepository(t, "python3.10")
		nested := filepath.Join(root, "tests", "data")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		repository := git.NewWorkTreeRepositoryAt(nested)

		// when
		topLevel, err := repository.TopLevel(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, root, topLevel)
		assert.Equal(t, "python3.10", filepath.Base(topLevel))
	})

	t.Run("should return the physical root when opened through a symlink", func(t *testing.T) {
		t.Parallel()

		// given
		root := initRepository(t, "python3.7")
		link := filepath.Join(t.TempDir(), "checkout")
		require.NoError(t, os.Symlink(root, link))
		repository := git.NewWorkTreeRepositoryAt(link)

		// when
		topLevel, err := repository.TopLevel(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, root, topLevel)
		assert.Equal(t, "python3.7", filepath.Base(topLevel))
	})

	t.Run("should fail outside of a repository", func(t *testing.T) {
		t.Parallel()

		// given
		repository := git.NewWorkTreeRepositoryAt(t.TempDir())

		// when
		_, err := repository.TopLevel(context.Background())

		// then
		require.Error(t, err)
	})
}
