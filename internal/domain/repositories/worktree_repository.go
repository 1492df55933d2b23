package repositories

import "context"

// WorkTreeRepository locates the version control working tree the patch is applied to.
type WorkTreeRepository interface {
	// TopLevel returns the absolute path of the working tree root.
	TopLevel(ctx context.Context) (string, error)
}
