//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/ferrypick/internal/domain/commands"
	"github.com/rios0rios0/ferrypick/internal/domain/entities"
)

// StubPickCommand is a stub implementation of commands.Pick.
type StubPickCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.PickOptions
}

var _ commands.Pick = (*StubPickCommand)(nil)

func (s *StubPickCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.PickOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
