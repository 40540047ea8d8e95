package commands

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	"github.com/rios0rios0/autoversioner/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/autoversioner/internal/infrastructure/repositories"
	"github.com/rios0rios0/autoversioner/internal/infrastructure/repositories/filesystem"
)

// Bump is the interface for the version propagation engine.
type Bump interface {
	Execute(settings *entities.Settings, opts BumpOptions) (*entities.VersionUpdates, error)
}

// BumpOptions holds runtime options for a single bump.
type BumpOptions struct {
	Kind     entities.BumpKind
	Projects []string // nil selects every project, empty selects none
	DryRun   bool
}

// BumpCommand computes the next version of every selected project and writes
// it into all files of that project, one project after the other.
type BumpCommand struct {
	files    repositories.FileRepository
	reader   repositories.VersionReader
	registry *infraRepos.MutatorRegistry
	log      logger.FieldLogger
}

// NewBumpCommand creates a new BumpCommand.
func NewBumpCommand(
	files repositories.FileRepository,
	reader repositories.VersionReader,
	registry *infraRepos.MutatorRegistry,
	log logger.FieldLogger,
) *BumpCommand {
	return &BumpCommand{
		files:    files,
		reader:   reader,
		registry: registry,
		log:      log,
	}
}

// Execute updates every resolved project group, main first, then subprojects in
// configuration order. Per-file failures are logged and skipped; a version
// source that cannot be read or bumped aborts the run, leaving the groups
// already processed as written.
func (it *BumpCommand) Execute(
	settings *entities.Settings,
	opts BumpOptions,
) (*entities.VersionUpdates, error) {
	if !opts.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidBumpKind, opts.Kind.String())
	}

	groups := settings.ResolveGroups(opts.Projects, it.log)
	it.log.Infof("Updating versions for projects: %s", strings.Join(groupIDs(groups), ", "))

	files := it.files
	if opts.DryRun {
		files = filesystem.NewDryRunFileRepository(files, it.log)
	}
	mutators, err := it.registry.Bind(files)
	if err != nil {
		return nil, err
	}

	updates := entities.NewVersionUpdates()
	for _, group := range groups {
		update, err := it.updateGroup(group, opts.Kind, mutators)
		if err != nil {
			if updates.Len() > 0 {
				it.log.Warnf(
					"Aborting after %d updated project(s), their files keep the new version",
					updates.Len(),
				)
			}
			return nil, err
		}
		updates.Set(update)
	}

	return updates, nil
}

// updateGroup reads the current version of group, bumps it and applies it to
// every file of the group.
func (it *BumpCommand) updateGroup(
	group entities.ProjectGroup,
	kind entities.BumpKind,
	mutators map[entities.FileKind]repositories.MutatorRepository,
) (entities.VersionUpdate, error) {
	source, _ := group.VersionSource()
	sourcePath := source.ResolvePath(group.BaseDir)

	current, err := it.reader.ReadVersion(sourcePath, source.VersionField())
	if err != nil {
		return entities.VersionUpdate{}, fmt.Errorf("project %s: %w", group.ID, err)
	}

	newVersion, err := entities.CalculateNewVersion(current, kind)
	if err != nil {
		return entities.VersionUpdate{}, fmt.Errorf("project %s (%s): %w", group.ID, sourcePath, err)
	}
	it.log.Infof("%s project: %s -> %s", group.ID, current, newVersion)

	failed := 0
	for _, target := range group.Files {
		mutator, ok := mutators[target.Kind]
		if !ok {
			it.log.Warnf("No updater for file type %q, skipping %s", target.Kind, target.Path)
			failed++
			continue
		}
		if !mutator.Apply(target, newVersion, group.BaseDir) {
			failed++
		}
	}

	if failed > 0 {
		it.log.Warnf("%s project: %d of %d file(s) could not be updated", group.ID, failed, len(group.Files))
	}
	it.log.Infof("Updated %s project version to %s", group.ID, newVersion)

	return entities.VersionUpdate{
		ProjectID:  group.ID,
		OldVersion: current,
		NewVersion: newVersion,
	}, nil
}

func groupIDs(groups []entities.ProjectGroup) []string {
	ids := make([]string, 0, len(groups))
	for _, group := range groups {
		ids = append(ids, group.ID)
	}
	return ids
}
