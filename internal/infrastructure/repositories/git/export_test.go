package git

import "io"

// NewApplierRepositoryWithBinary creates an ApplierRepository running binary instead of git.
func NewApplierRepositoryWithBinary(binary string, stdout, stderr io.Writer) *ApplierRepository {
	return &ApplierRepository{binary: binary, stdout: stdout, stderr: stderr}
}
