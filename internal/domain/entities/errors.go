package entities

import (
	"errors"
	"fmt"
)

// ErrMissingReference is returned when no patch reference was given on the command line.
var ErrMissingReference = errors.New("missing patch reference")

// UnrecognizedLinkError is returned when a reference is neither an existing
// file nor one of the supported forge URL shapes.
type UnrecognizedLinkError struct {
	Link string
}

func (e *UnrecognizedLinkError) Error() string {
	return fmt.Sprintf("unrecognized link: %q", e.Link)
}

// FetchError wraps a filesystem or network failure while obtaining patch content.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch patch from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ApplyError reports a nonzero exit status from the apply command.
// PatchPath points at the artifact that was handed to the command.
type ApplyError struct {
	Command   string
	ExitCode  int
	PatchPath string
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("%s failed with exit code %d", e.Command, e.ExitCode)
}
