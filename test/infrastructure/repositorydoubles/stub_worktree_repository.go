//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/ferrypick/internal/domain/repositories"
)

// StubWorkTreeRepository implements repositories.WorkTreeRepository with a fixed root.
type StubWorkTreeRepository struct {
	Root          string
	TopLevelErr   error
	TopLevelCalls int
}

var _ repositories.WorkTreeRepository = (*StubWorkTreeRepository)(nil)

func (r *StubWorkTreeRepository) TopLevel(_ context.Context) (string, error) {
	r.TopLevelCalls++
	return r.Root, r.TopLevelErr
}
