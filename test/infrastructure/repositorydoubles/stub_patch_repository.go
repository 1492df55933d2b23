//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/ferrypick/internal/domain/repositories"
)

// StubPatchRepository implements repositories.PatchRepository with canned content.
type StubPatchRepository struct {
	Content     []byte
	DownloadErr error
	// spy: URLs that were requested
	DownloadedURLs []string
}

var _ repositories.PatchRepository = (*StubPatchRepository)(nil)

func (r *StubPatchRepository) Download(_ context.Context, patchURL string) ([]byte, error) {
	r.DownloadedURLs = append(r.DownloadedURLs, patchURL)
	if r.DownloadErr != nil {
		return nil, r.DownloadErr
	}
	return r.Content, nil
}
