package controllers

import (
	"fmt"
	"text/tabwriter"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autoversioner/internal/domain/commands"
	"github.com/rios0rios0/autoversioner/internal/domain/entities"
)

const (
	tabMinWidth = 0
	tabWidth    = 4
	tabPadding  = 2
	noValue     = "-"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command commands.List
	log     *logger.Logger
}

// NewListController creates a new ListController.
func NewListController(command commands.List, log *logger.Logger) *ListController {
	return &ListController{command: command, log: log}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "List every project with its current and next versions",
		Long: `Reads the configuration and prints, for the main project and every
subproject, its version source, its current version and the version each
bump type would produce. Nothing is written.`,
	}
}

// AddFlags adds no flags: list only uses the global ones.
func (it *ListController) AddFlags(_ *cobra.Command) {}

// Execute prints the project table.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) error {
	applyVerbosity(cmd, it.log)

	settings, err := loadSettings(cmd, it.log)
	if err != nil {
		return err
	}

	statuses := it.command.Execute(settings)

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), tabMinWidth, tabWidth, tabPadding, ' ', 0)
	_, _ = fmt.Fprintln(writer, "PROJECT\tSOURCE\tFILES\tCURRENT\tMAJOR\tMINOR\tPATCH")
	for _, status := range statuses {
		_, _ = fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			status.ID,
			orNoValue(status.Source),
			status.Files,
			currentColumn(status),
			orNoValue(status.NextVersions[entities.BumpMajor]),
			orNoValue(status.NextVersions[entities.BumpMinor]),
			orNoValue(status.NextVersions[entities.BumpPatch]),
		)
	}
	return writer.Flush()
}

func currentColumn(status commands.ProjectStatus) string {
	if status.Err != nil {
		return "error: " + status.Err.Error()
	}
	return orNoValue(status.CurrentVersion)
}

func orNoValue(value string) string {
	if value == "" {
		return noValue
	}
	return value
}
