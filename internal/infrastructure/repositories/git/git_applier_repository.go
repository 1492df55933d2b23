package git

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	domainRepos "github.com/rios0rios0/ferrypick/internal/domain/repositories"
)

const gitBinary = "git"

// ApplierRepository applies mailbox patches with `git am --reject`.
type ApplierRepository struct {
	binary string
	stdout io.Writer
	stderr io.Writer
}

var _ domainRepos.ApplierRepository = (*ApplierRepository)(nil)

// NewApplierRepository creates an ApplierRepository that inherits the process output streams.
func NewApplierRepository() *ApplierRepository {
	return &ApplierRepository{
		binary: gitBinary,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

func (r *ApplierRepository) arguments(patchPath string) []string {
	return []string{"am", "--reject", patchPath}
}

// CommandLine returns the command Apply runs, for display.
func (r *ApplierRepository) CommandLine(patchPath string) string {
	return strings.Join(append([]string{r.binary}, r.arguments(patchPath)...), " ")
}

// Apply runs `git am --reject` in the current directory and returns its exit code.
func (r *ApplierRepository) Apply(ctx context.Context, patchPath string) (int, error) {
	cmd := exec.CommandContext(ctx, r.binary, r.arguments(patchPath)...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, errors.Wrapf(err, "failed to start %s", r.binary)
}
