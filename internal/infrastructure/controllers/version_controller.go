package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/ferrypick/internal/domain/entities"
)

// version is set at build time with -ldflags "-X ...controllers.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // build-time variable

// VersionController handles the "version" subcommand.
type VersionController struct{}

// NewVersionController creates a new VersionController.
func NewVersionController() *VersionController {
	return &VersionController{}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version",
		Short: "Print the ferrypick version",
	}
}

// Execute prints the version.
func (it *VersionController) Execute(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "ferrypick %s\n", version)
	return err
}
