//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/ferrypick/internal/domain/entities"
)

func TestRewrite(t *testing.T) {
	t.Parallel()

	t.Run("should rename spec file in git diff header", func(t *testing.T) {
		t.Parallel()

		// given
		line := []byte("diff --git a/python3.7.spec b/python3.7.spec")

		// when
		result := entities.Rewrite(line, "python3.7", "python37")

		// then
		assert.Equal(t, "diff --git a/python37.spec b/python37.spec", string(result))
	})

	t.Run("should rename rpmlintrc file", func(t *testing.T) {
		t.Parallel()

		// given
		line := []byte("+++ b/python3.rpmlintrc")

		// when
		result := entities.Rewrite(line, "python3", "python3.9")

		// then
		assert.Equal(t, "+++ b/python3.9.rpmlintrc", string(result))
	})

	t.Run("should leave random occurrences of the name untouched", func(t *testing.T) {
		t.Parallel()

		// given
		line := []byte(" #  remember to update the python3-docs package as well")

		// when
		result := entities.Rewrite(line, "python3-docs", "python-docs")

		// then
		assert.Equal(t, string(line), string(result))
	})

	t.Run("should return content unchanged when names are equal", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("--- a/python3.9.spec\n+++ b/python3.9.spec\n")

		// when
		result := entities.Rewrite(content, "python3.9", "python3.9")

		// then
		assert.Equal(t, content, result)
	})

	t.Run("should rename both suffixes under both prefixes", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("--- a/foo.spec\n+++ b/foo.spec\n--- a/foo.rpmlintrc\n+++ b/foo.rpmlintrc\n")

		// when
		result := entities.Rewrite(content, "foo", "bar")

		// then
		assert.Equal(t, "--- a/bar.spec\n+++ b/bar.spec\n--- a/bar.rpmlintrc\n+++ b/bar.rpmlintrc\n", string(result))
	})

	t.Run("should leave unrecognized suffixes untouched", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("--- a/foo.patch\n+++ b/foo.conf\n")

		// when
		result := entities.Rewrite(content, "foo", "bar")

		// then
		assert.Equal(t, string(content), string(result))
	})

	t.Run("should match the original name literally", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("a/python3x7.spec a/python3.7.spec")

		// when
		result := entities.Rewrite(content, "python3.7", "python37")

		// then
		assert.Equal(t, "a/python3x7.spec a/python37.spec", string(result))
	})

	t.Run("should rename any package name when the original is unknown", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("diff --git a/python3.7.spec b/python3.7.spec\n--- a/python-docs.rpmlintrc\n")

		// when
		result := entities.Rewrite(content, "", "python3.10")

		// then
		assert.Equal(t, "diff --git a/python3.10.spec b/python3.10.spec\n--- a/python3.10.rpmlintrc\n", string(result))
	})

	t.Run("should not cross slashes or spaces when the original is unknown", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("see a/b c.spec and a/sub/dir.txt\n")

		// when
		result := entities.Rewrite(content, "", "bar")

		// then
		assert.Equal(t, string(content), string(result))
	})

	t.Run("should keep dollar signs in the new name literal", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("+++ b/foo.spec")

		// when
		result := entities.Rewrite(content, "foo", "$1bar")

		// then
		assert.Equal(t, "+++ b/$1bar.spec", string(result))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("diff --git a/python3.7.spec b/python3.7.spec\n # python3.7 in prose\n")
		once := entities.Rewrite(content, "python3.7", "python37")

		// when
		twice := entities.Rewrite(once, "python37", "python37")

		// then
		assert.Equal(t, once, twice)
	})
}
