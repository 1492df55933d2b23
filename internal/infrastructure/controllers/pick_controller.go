package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/ferrypick/internal/domain/commands"
	"github.com/rios0rios0/ferrypick/internal/domain/entities"
)

// usageArguments are the kinds of reference accepted as first argument.
var usageArguments = []string{"COMMIT", "PR_LINK", "FILENAME"} //nolint:gochecknoglobals // usage text

// PickController handles the root command: ferrypick REFERENCE [CURRENT_PKGNAME].
type PickController struct {
	command commands.Pick
}

// NewPickController creates a new PickController.
func NewPickController(command commands.Pick) *PickController {
	return &PickController{command: command}
}

// GetBind returns the Cobra command metadata for the pick controller.
func (it *PickController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "ferrypick REFERENCE [CURRENT_PKGNAME]",
		Short: "Apply a commit or pull request from another package's dist-git",
		Long: `Download a commit or pull request patch from a Pagure forge (or read a local
patch file), rename the package files in it (NAME.spec, NAME.rpmlintrc) to
the current package name and apply it with "git am --reject".

REFERENCE is one of:
  https://src.fedoraproject.org/rpms/NAME/c/HASH
  https://src.fedoraproject.org/rpms/NAME/pull-request/ID
  a path to a local patch file

CURRENT_PKGNAME defaults to the name of the git working tree root.`,
	}
}

// Execute runs a single pick.
func (it *PickController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, arg := range usageArguments {
			fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s %s [CURRENT_PKGNAME]\n", cmd.Root().Name(), arg)
		}
		return entities.ErrMissingReference
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	keepPatch, _ := cmd.Flags().GetBool("keep-patch")

	opts := commands.PickOptions{
		Reference: args[0],
		DryRun:    dryRun,
		KeepPatch: keepPatch,
		Output:    cmd.OutOrStdout(),
	}
	if len(args) > 1 {
		opts.CurrentName = args[1]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return it.command.Execute(ctx, settings, opts)
}

// AddFlags adds the pick-specific flags to the given Cobra command.
func (it *PickController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Print the renamed patch instead of applying it")
	cmd.Flags().Bool("keep-patch", false, "Keep the temporary patch file when applying fails")
	cmd.Flags().String("base-url", "", "Forge base URL (default: "+entities.DefaultBaseURL+")")
}

// loadSettings reads the configuration file, if any, and applies flag overrides.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, findErr := entities.FindConfigFile()
		if findErr != nil {
			logger.Debugf("Using default settings: %v", findErr)
		}
		configPath = found
	}

	settings := entities.NewDefaultSettings()
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	}

	if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
		settings.BaseURL = baseURL
	}
	return settings, nil
}
