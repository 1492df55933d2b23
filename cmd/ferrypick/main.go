package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/ferrypick/internal"
	"github.com/rios0rios0/ferrypick/internal/domain/entities"
	"github.com/rios0rios0/ferrypick/internal/infrastructure/controllers"
)

func buildRootCommand(pickController *controllers.PickController) *cobra.Command {
	bind := pickController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.MaximumNArgs(2), //nolint:mnd // reference + package name
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
		RunE: func(command *cobra.Command, args []string) error {
			return pickController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	pickController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}
		rootCmd.AddCommand(subCmd)
	}
}

// preferPatchFile drops the subcommands when the first argument is an existing
// path, so a local patch named like a subcommand is picked instead of dispatched.
// Without subcommands cobra also skips its implicit help and completion commands.
func preferPatchFile(rootCmd *cobra.Command, args []string) {
	if len(args) == 0 {
		return
	}
	if _, err := os.Stat(args[0]); err != nil {
		return
	}
	rootCmd.RemoveCommand(rootCmd.Commands()...)
}

// exitCode maps the error returned by the root command to the process exit status.
// A failed apply keeps the exit code of git am.
func exitCode(err error) int {
	var applyErr *entities.ApplyError
	if errors.As(err, &applyErr) && applyErr.ExitCode != 0 {
		return applyErr.ExitCode
	}
	return 1
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	if err := godotenv.Load(); err != nil {
		// a missing .env file is fine
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			logger.Fatalf("Failed to load .env: %s", err)
		}
	}
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetPickController())
	addSubcommands(cobraRoot, appContext)
	preferPatchFile(cobraRoot, os.Args[1:])

	if err := cobraRoot.Execute(); err != nil {
		var applyErr *entities.ApplyError
		if !errors.Is(err, entities.ErrMissingReference) && !errors.As(err, &applyErr) {
			logger.Errorf("Error executing 'ferrypick': %s", err)
		}
		os.Exit(exitCode(err))
	}
}
