//go:build unit

package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/ferrypick/internal/domain/commands"
	"github.com/rios0rios0/ferrypick/internal/domain/entities"
	doubles "github.com/rios0rios0/ferrypick/test/infrastructure/repositorydoubles"
)

func TestFetchCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should read an existing local file without a package name", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "0001-fix.patch")
		require.NoError(t, os.WriteFile(path, []byte("+++ b/foo.spec\n"), 0o600))
		repository := &doubles.StubPatchRepository{}
		cmd := commands.NewFetchCommand(repository)

		// when
		patch, err := cmd.Execute(context.Background(), entities.NewDefaultSettings(), path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "+++ b/foo.spec\n", string(patch.Content))
		assert.False(t, patch.HasOriginalName())
		assert.Empty(t, repository.DownloadedURLs)
	})

	t.Run("should download the patch of a commit link", func(t *testing.T) {
		t.Parallel()

		// given
		repository := &doubles.StubPatchRepository{Content: []byte("patch body")}
		cmd := commands.NewFetchCommand(repository)
		link := entities.DefaultBaseURL + "/rpms/python3.9/c/a0928446?branch=rawhide"

		// when
		patch, err := cmd.Execute(context.Background(), entities.NewDefaultSettings(), link)

		// then
		require.NoError(t, err)
		assert.Equal(t, "patch body", string(patch.Content))
		assert.Equal(t, "python3.9", patch.OriginalName)
		assert.Equal(t, []string{entities.DefaultBaseURL + "/rpms/python3.9/c/a0928446.patch"}, repository.DownloadedURLs)
	})

	t.Run("should resolve links against the configured base URL", func(t *testing.T) {
		t.Parallel()

		// given
		repository := &doubles.StubPatchRepository{Content: []byte("x")}
		cmd := commands.NewFetchCommand(repository)
		settings := entities.NewDefaultSettings()
		settings.BaseURL = "https://git.example.com"

		// when
		patch, err := cmd.Execute(context.Background(), settings, "https://git.example.com/rpms/foo/pull-request/3")

		// then
		require.NoError(t, err)
		assert.Equal(t, "foo", patch.OriginalName)
		assert.Equal(t, []string{"https://git.example.com/rpms/foo/pull-request/3.patch"}, repository.DownloadedURLs)
	})

	t.Run("should return UnrecognizedLinkError for an unknown reference", func(t *testing.T) {
		t.Parallel()

		// given
		repository := &doubles.StubPatchRepository{}
		cmd := commands.NewFetchCommand(repository)

		// when
		_, err := cmd.Execute(context.Background(), entities.NewDefaultSettings(), "no-such-file.patch")

		// then
		var linkErr *entities.UnrecognizedLinkError
		require.ErrorAs(t, err, &linkErr)
		assert.Empty(t, repository.DownloadedURLs)
	})

	t.Run("should wrap download failures in FetchError", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("connection refused")
		repository := &doubles.StubPatchRepository{DownloadErr: cause}
		cmd := commands.NewFetchCommand(repository)

		// when
		_, err := cmd.Execute(context.Background(), entities.NewDefaultSettings(),
			entities.DefaultBaseURL+"/rpms/foo/pull-request/1")

		// then
		var fetchErr *entities.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, entities.DefaultBaseURL+"/rpms/foo/pull-request/1.patch", fetchErr.Source)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("should wrap local read failures in FetchError", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir() // exists, but cannot be read as a file
		cmd := commands.NewFetchCommand(&doubles.StubPatchRepository{})

		// when
		_, err := cmd.Execute(context.Background(), entities.NewDefaultSettings(), dir)

		// then
		var fetchErr *entities.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, dir, fetchErr.Source)
	})
}
