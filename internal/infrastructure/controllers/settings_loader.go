package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
)

// loadSettings reads the file given with --config, or the first file found in
// the default locations. With neither, the default settings are used.
func loadSettings(cmd *cobra.Command, log logger.FieldLogger) (*entities.Settings, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		found, err := entities.FindConfigFile(".")
		if err != nil {
			log.Infof("No config file found, using defaults")
			return entities.DefaultSettings(), nil
		}
		cfgPath = found
	}

	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return nil, err
	}

	log.Infof("Loaded configuration from %s", cfgPath)
	return settings, nil
}

// applyVerbosity raises the log level when --verbose is set.
func applyVerbosity(cmd *cobra.Command, log *logger.Logger) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(logger.DebugLevel)
	}
}
