//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"

	"github.com/rios0rios0/ferrypick/internal/domain/repositories"
)

// SpyApplierRepository implements repositories.ApplierRepository. It reads the
// patch file while it still exists so tests can inspect what would be applied.
type SpyApplierRepository struct {
	ExitCode int
	ApplyErr error

	// spy: inputs received
	PatchPaths    []string
	PatchContents [][]byte
}

var _ repositories.ApplierRepository = (*SpyApplierRepository)(nil)

func (r *SpyApplierRepository) CommandLine(patchPath string) string {
	return "git am --reject " + patchPath
}

func (r *SpyApplierRepository) Apply(_ context.Context, patchPath string) (int, error) {
	r.PatchPaths = append(r.PatchPaths, patchPath)
	content, err := os.ReadFile(patchPath)
	if err != nil {
		return 0, err
	}
	r.PatchContents = append(r.PatchContents, content)
	return r.ExitCode, r.ApplyErr
}
