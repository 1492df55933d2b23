package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	for _, constructor := range []any{NewFetchCommand, NewApplyCommand, NewPickCommand} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *FetchCommand) Fetch {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ApplyCommand) Apply {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *PickCommand) Pick {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
