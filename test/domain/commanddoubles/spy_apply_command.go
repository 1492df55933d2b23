//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/ferrypick/internal/domain/commands"
)

// SpyApplyCommand records the content it was asked to apply.
type SpyApplyCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastContent      []byte
	LastOpts         commands.ApplyOptions
}

var _ commands.Apply = (*SpyApplyCommand)(nil)

func (s *SpyApplyCommand) Execute(
	_ context.Context,
	content []byte,
	opts commands.ApplyOptions,
) error {
	s.ExecuteCallCount++
	s.LastContent = append([]byte(nil), content...)
	s.LastOpts = opts
	return s.ExecuteErr
}
