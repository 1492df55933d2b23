//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/ferrypick/internal/domain/commands"
	"github.com/rios0rios0/ferrypick/internal/domain/entities"
)

// StubFetchCommand is a stub implementation of commands.Fetch.
type StubFetchCommand struct {
	Patch         entities.Patch
	ExecuteErr    error
	LastReference string
}

var _ commands.Fetch = (*StubFetchCommand)(nil)

func (s *StubFetchCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	reference string,
) (entities.Patch, error) {
	s.LastReference = reference
	return s.Patch, s.ExecuteErr
}
