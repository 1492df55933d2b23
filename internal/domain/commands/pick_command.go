package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kylelemons/godebug/diff"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/ferrypick/internal/domain/entities"
	"github.com/rios0rios0/ferrypick/internal/domain/repositories"
)

// Pick is the interface for the full fetch, rename and apply pipeline.
type Pick interface {
	Execute(ctx context.Context, settings *entities.Settings, opts PickOptions) error
}

// PickOptions holds runtime options for a single pick.
type PickOptions struct {
	Reference   string
	CurrentName string // defaults to the base name of the working tree root
	DryRun      bool
	KeepPatch   bool
	Output      io.Writer // receives the rewritten patch in dry-run mode
}

// PickCommand cherry-picks a patch from another package into the current one.
type PickCommand struct {
	fetch    Fetch
	apply    Apply
	workTree repositories.WorkTreeRepository
}

// NewPickCommand creates a new PickCommand.
func NewPickCommand(fetch Fetch, apply Apply, workTree repositories.WorkTreeRepository) *PickCommand {
	return &PickCommand{
		fetch:    fetch,
		apply:    apply,
		workTree: workTree,
	}
}

// Execute runs the pipeline: resolve the current package name, fetch the
// patch, rename the package files in it, then apply it (or print it on dry run).
func (it *PickCommand) Execute(ctx context.Context, settings *entities.Settings, opts PickOptions) error {
	if opts.Reference == "" {
		return entities.ErrMissingReference
	}

	currentName := opts.CurrentName
	if currentName == "" {
		topLevel, err := it.workTree.TopLevel(ctx)
		if err != nil {
			return fmt.Errorf("failed to detect the current package name: %w", err)
		}
		currentName = filepath.Base(topLevel)
		logger.Debugf("Working tree root: %s", topLevel)
	}

	patch, err := it.fetch.Execute(ctx, settings, opts.Reference)
	if err != nil {
		return err
	}

	content := entities.Rewrite(patch.Content, patch.OriginalName, currentName)
	logRename(patch, currentName, content)

	if opts.DryRun {
		output := opts.Output
		if output == nil {
			output = os.Stdout
		}
		if _, writeErr := output.Write(content); writeErr != nil {
			return fmt.Errorf("failed to write patch: %w", writeErr)
		}
		return nil
	}

	return it.apply.Execute(ctx, content, ApplyOptions{
		KeepFailedPatch: opts.KeepPatch || settings.KeepFailedPatch,
	})
}

func logRename(patch entities.Patch, currentName string, content []byte) {
	original := patch.OriginalName
	if !patch.HasOriginalName() {
		original = "<any>"
	}

	if bytes.Equal(patch.Content, content) {
		logger.Debugf("No package files to rename from %s to %s", original, currentName)
		return
	}

	logger.Infof("Renaming %s to %s", original, currentName)
	if logger.IsLevelEnabled(logger.DebugLevel) {
		logger.Debugf("Renamed lines:\n%s", changedLines(string(patch.Content), string(content)))
	}
}

// changedLines keeps only the added and removed lines of a line diff.
func changedLines(before, after string) string {
	var out bytes.Buffer
	for _, line := range bytes.Split([]byte(diff.Diff(before, after)), []byte("\n")) {
		if len(line) > 0 && (line[0] == '-' || line[0] == '+') {
			out.Write(line)
			out.WriteByte('\n')
		}
	}
	return out.String()
}
