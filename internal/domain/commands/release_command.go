package commands

import (
	"context"
	"slices"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	"github.com/rios0rios0/autoversioner/internal/domain/repositories"
)

const updateEnvQuestion = "Do you want to update the .env file?"

// Release is the interface for the release command.
type Release interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ReleaseOptions) (*entities.VersionUpdates, error)
}

// ReleaseOptions holds the answers already known from the command line.
// Anything left empty is asked interactively.
type ReleaseOptions struct {
	Kind     string   // major, minor or patch
	Projects []string // If set, the project selection prompt is skipped
	Message  string
	SkipGit  bool
	DryRun   bool
}

// ReleaseCommand collects the missing answers, bumps the selected projects and
// publishes the result to git.
type ReleaseCommand struct {
	bump    Bump
	publish Publish
	prompt  repositories.PromptRepository
	log     logger.FieldLogger
}

// NewReleaseCommand creates a new ReleaseCommand.
func NewReleaseCommand(
	bump Bump,
	publish Publish,
	prompt repositories.PromptRepository,
	log logger.FieldLogger,
) *ReleaseCommand {
	return &ReleaseCommand{
		bump:    bump,
		publish: publish,
		prompt:  prompt,
		log:     log,
	}
}

// Execute runs one release.
func (it *ReleaseCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ReleaseOptions,
) (*entities.VersionUpdates, error) {
	kind, err := it.resolveKind(opts.Kind)
	if err != nil {
		return nil, err
	}

	projects, err := it.resolveProjects(settings, opts.Projects)
	if err != nil {
		return nil, err
	}

	skipGit := opts.SkipGit || opts.DryRun || settings.SkipGitCheck
	message := opts.Message
	if !skipGit && message == "" {
		if message, err = it.prompt.AskCommitMessage(); err != nil {
			return nil, err
		}
	}

	effective, err := it.resolveChangeEnv(settings)
	if err != nil {
		return nil, err
	}

	selection := effective.EffectiveSelection(projects, it.log)
	updates, err := it.bump.Execute(effective, BumpOptions{
		Kind:     kind,
		Projects: selection,
		DryRun:   opts.DryRun,
	})
	if err != nil {
		return nil, err
	}

	if updates.Len() == 0 {
		it.log.Warn("No project was updated, check that each project lists its package.json")
	}

	if skipGit {
		it.log.Info("Skipping git commit, push and tag")
		return updates, nil
	}

	if publishErr := it.publish.Execute(ctx, updates, message); publishErr != nil {
		return updates, publishErr
	}
	return updates, nil
}

func (it *ReleaseCommand) resolveKind(raw string) (entities.BumpKind, error) {
	if raw != "" {
		return entities.ParseBumpKind(raw)
	}
	return it.prompt.SelectBumpKind()
}

// resolveProjects asks for the selection only when nothing was requested and
// there are subprojects to choose from.
func (it *ReleaseCommand) resolveProjects(settings *entities.Settings, requested []string) ([]string, error) {
	if len(requested) > 0 {
		return requested, nil
	}
	if len(settings.Subprojects) == 0 {
		return nil, nil
	}

	available := settings.ProjectIDs()
	return it.prompt.SelectProjects(available, slices.Clone(available))
}

// resolveChangeEnv asks whether to update .env when neither the configuration
// nor its file list decides it.
func (it *ReleaseCommand) resolveChangeEnv(settings *entities.Settings) (*entities.Settings, error) {
	if settings.ChangeEnv != nil {
		return settings.WithChangeEnv(*settings.ChangeEnv), nil
	}
	if settings.DeclaresMainFiles() {
		return settings.WithChangeEnv(false), nil
	}

	changeEnv, err := it.prompt.Confirm(updateEnvQuestion, false)
	if err != nil {
		return nil, err
	}
	return settings.WithChangeEnv(changeEnv), nil
}
