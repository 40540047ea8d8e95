package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autoversioner/internal/domain/commands"
	"github.com/rios0rios0/autoversioner/internal/domain/entities"
)

// ReleaseController handles the root command: bump, propagate and publish.
type ReleaseController struct {
	command commands.Release
	log     *logger.Logger
}

// NewReleaseController creates a new ReleaseController.
func NewReleaseController(command commands.Release, log *logger.Logger) *ReleaseController {
	return &ReleaseController{command: command, log: log}
}

// GetBind returns the Cobra command metadata for the release controller.
func (it *ReleaseController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "autoversioner",
		Short: "Bump semantic versions across a project and its subprojects",
		Long: `Bumps the semantic version of the main project and of every selected
subproject, writes the new version into the configured JSON fields and
env-file keys, then commits, pushes and tags the result.

Answers not given as flags are asked interactively.

Usage modes:
  autoversioner                      Interactive release
  autoversioner -t patch -m "fix"    Non-interactive release
  autoversioner -p packages/api      Release a single subproject
  autoversioner list                 Show every project and its version`,
	}
}

// AddFlags adds the release-specific flags to the given Cobra command.
func (it *ReleaseController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "", "Version bump type (major, minor, patch)")
	cmd.Flags().StringSliceP("project", "p", nil,
		"Project to update, repeatable (main or a subproject dir; default: all)")
	cmd.Flags().StringP("message", "m", "", "Commit message")
	cmd.Flags().Bool("skip-git", false, "Update files only, without commit, push or tag")
}

// Execute runs one release.
func (it *ReleaseController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	applyVerbosity(cmd, it.log)

	settings, err := loadSettings(cmd, it.log)
	if err != nil {
		return err
	}

	kind, _ := cmd.Flags().GetString("type")
	var projects []string
	if cmd.Flags().Changed("project") {
		projects, _ = cmd.Flags().GetStringSlice("project")
	}
	message, _ := cmd.Flags().GetString("message")
	skipGit, _ := cmd.Flags().GetBool("skip-git")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	updates, err := it.command.Execute(ctx, settings, commands.ReleaseOptions{
		Kind:     kind,
		Projects: projects,
		Message:  message,
		SkipGit:  skipGit,
		DryRun:   dryRun,
	})
	if err != nil {
		return err
	}

	for _, update := range updates.Entries() {
		it.log.Debugf("%s: %s -> %s", update.ProjectID, update.OldVersion, update.NewVersion)
	}
	it.log.WithField("versions", updates.AsMap()).Infof("Released %d project(s)", updates.Len())
	return nil
}
