package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autoversioner/internal"
	"github.com/rios0rios0/autoversioner/internal/domain/entities"
)

const (
	exitRuntimeError = 1
	exitConfigError  = 2
)

func buildRootCommand(root entities.Controller) *cobra.Command {
	bind := root.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          root.Execute,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect autoVersioner.conf.json)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without writing files or touching git")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	root.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE:  controller.Execute,
		}
		controller.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func newLogger() *logger.Logger {
	log := logger.New()
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	log.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		log.SetLevel(logger.DebugLevel)
	}
	return log
}

// exitCode maps configuration and version errors to 2, everything else to 1.
func exitCode(err error) int {
	if entities.IsConfigurationError(err) {
		return exitConfigError
	}
	return exitRuntimeError
}

func main() {
	log := newLogger()

	// Inject controllers via DIG
	appContext := injectAppContext(log)
	cobraRoot := buildRootCommand(appContext.GetRootController())
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		if entities.IsConfigurationError(err) {
			log.Errorf("Configuration error: %s", err)
		} else {
			log.Errorf("Error executing 'autoversioner': %s", err)
		}
		os.Exit(exitCode(err))
	}
}
