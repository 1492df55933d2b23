package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/ferrypick/internal/domain/entities"
	"github.com/rios0rios0/ferrypick/internal/domain/repositories"
)

const patchFilePattern = "ferrypick-*.patch"

// Apply is the interface for the command that applies patch content to the working tree.
type Apply interface {
	Execute(ctx context.Context, content []byte, opts ApplyOptions) error
}

// ApplyOptions holds runtime options for applying a patch.
type ApplyOptions struct {
	// KeepFailedPatch leaves the temporary patch on disk when the apply fails.
	KeepFailedPatch bool
}

// ApplyCommand stores the content in a temporary file and hands it to the applier.
type ApplyCommand struct {
	applier repositories.ApplierRepository
}

// NewApplyCommand creates a new ApplyCommand with the given applier repository.
func NewApplyCommand(applier repositories.ApplierRepository) *ApplyCommand {
	return &ApplyCommand{applier: applier}
}

// Execute applies content and returns *entities.ApplyError when the applier
// exits with a nonzero status. The temporary file is removed on return.
func (it *ApplyCommand) Execute(ctx context.Context, content []byte, opts ApplyOptions) error {
	file, err := os.CreateTemp("", patchFilePattern)
	if err != nil {
		return fmt.Errorf("failed to create temporary patch file: %w", err)
	}
	patchPath := file.Name()

	keep := false
	defer func() {
		if keep {
			return
		}
		if rmErr := os.Remove(patchPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			logger.Warnf("Failed to remove %s: %v", patchPath, rmErr)
		}
	}()

	_, writeErr := file.Write(content)
	closeErr := file.Close()
	if writeErr != nil {
		return fmt.Errorf("failed to write %s: %w", patchPath, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", patchPath, closeErr)
	}

	commandLine := it.applier.CommandLine(patchPath)
	logger.Infof("$ %s", commandLine)

	exitCode, applyErr := it.applier.Apply(ctx, patchPath)
	if applyErr != nil {
		return fmt.Errorf("failed to run %s: %w", commandLine, applyErr)
	}
	if exitCode == 0 {
		return nil
	}

	keep = opts.KeepFailedPatch
	logger.Errorf("%s failed with exit code %d", commandLine, exitCode)
	if keep {
		logger.Errorf("Patch stored as: %s", patchPath)
	} else {
		logger.Errorf("Patch was stored as: %s (removed, rerun with --keep-patch to inspect it)", patchPath)
	}

	return &entities.ApplyError{
		Command:   commandLine,
		ExitCode:  exitCode,
		PatchPath: patchPath,
	}
}
