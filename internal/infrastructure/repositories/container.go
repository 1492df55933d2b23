package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/ferrypick/internal/domain/repositories"
	forgeRepo "github.com/rios0rios0/ferrypick/internal/infrastructure/repositories/forge"
	gitRepo "github.com/rios0rios0/ferrypick/internal/infrastructure/repositories/git"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.PatchRepository {
		return forgeRepo.NewPatchRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.WorkTreeRepository {
		return gitRepo.NewWorkTreeRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.ApplierRepository {
		return gitRepo.NewApplierRepository()
	}); err != nil {
		return err
	}

	return nil
}
