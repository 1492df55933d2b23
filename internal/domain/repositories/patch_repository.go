package repositories

import "context"

// PatchRepository abstracts the remote location patches are downloaded from.
type PatchRepository interface {
	// Download returns the full body served at patchURL.
	Download(ctx context.Context, patchURL string) ([]byte, error)
}
