package repositories

import "context"

// ApplierRepository abstracts the version control command that applies a
// mailbox patch to the working tree, keeping rejected hunks in .rej files.
type ApplierRepository interface {
	// CommandLine returns the printable command that Apply runs for patchPath.
	CommandLine(patchPath string) string

	// Apply runs the command against patchPath. A command that ran but failed
	// is reported through a nonzero exit code and a nil error, the error is
	// reserved for a command that could not be started at all.
	Apply(ctx context.Context, patchPath string) (int, error)
}
