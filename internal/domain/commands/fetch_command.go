package commands

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/ferrypick/internal/domain/entities"
	"github.com/rios0rios0/ferrypick/internal/domain/repositories"
)

// Fetch is the interface for the command that obtains the raw patch.
type Fetch interface {
	Execute(ctx context.Context, settings *entities.Settings, reference string) (entities.Patch, error)
}

// FetchCommand reads a patch from a local file or downloads it from the forge.
type FetchCommand struct {
	repository repositories.PatchRepository
}

// NewFetchCommand creates a new FetchCommand with the given patch repository.
func NewFetchCommand(repository repositories.PatchRepository) *FetchCommand {
	return &FetchCommand{repository: repository}
}

// Execute returns the patch behind reference. Local files carry no package
// name, forge links carry the name of the repository they point at.
func (it *FetchCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	reference string,
) (entities.Patch, error) {
	if _, err := os.Stat(reference); err == nil {
		content, readErr := os.ReadFile(reference)
		if readErr != nil {
			return entities.Patch{}, &entities.FetchError{Source: reference, Err: readErr}
		}
		logger.Debugf("Read %d bytes from %s", len(content), reference)
		return entities.Patch{Content: content}, nil
	}

	link, err := entities.NewLinkResolver(settings.BaseURL).ParseLink(reference)
	if err != nil {
		return entities.Patch{}, err
	}

	if settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.Timeout)
		defer cancel()
	}

	logger.Infof("Downloading %s", link.PatchURL)
	content, err := it.repository.Download(ctx, link.PatchURL)
	if err != nil {
		return entities.Patch{}, &entities.FetchError{Source: link.PatchURL, Err: err}
	}

	return entities.Patch{Content: content, OriginalName: link.PackageName}, nil
}
