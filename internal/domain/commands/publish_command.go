package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	"github.com/rios0rios0/autoversioner/internal/domain/repositories"
)

// Publish is the interface for the publish command.
type Publish interface {
	Execute(ctx context.Context, updates *entities.VersionUpdates, message string) error
}

// PublishCommand commits the bumped files, pushes them and tags the release.
type PublishCommand struct {
	git repositories.GitRepository
	log logger.FieldLogger
}

// NewPublishCommand creates a new PublishCommand.
func NewPublishCommand(git repositories.GitRepository, log logger.FieldLogger) *PublishCommand {
	return &PublishCommand{git: git, log: log}
}

// Execute commits every change with the summary appended to message, pushes
// the branch, then creates and pushes the release tag. A clean working tree is
// left alone.
func (it *PublishCommand) Execute(
	ctx context.Context,
	updates *entities.VersionUpdates,
	message string,
) error {
	hasChanges, err := it.git.HasChanges(ctx)
	if err != nil {
		return fmt.Errorf("error pushing to git: %w", err)
	}
	if !hasChanges {
		it.log.Info("No changes to commit. Working tree clean.")
		return nil
	}

	fullMessage := updates.CommitMessage(message)

	if stageErr := it.git.StageAll(ctx); stageErr != nil {
		return fmt.Errorf("error pushing to git: %w", stageErr)
	}
	it.log.Info("Staged all changes for commit.")

	hash, err := it.git.Commit(ctx, fullMessage)
	if err != nil {
		return fmt.Errorf("error pushing to git: %w", err)
	}
	it.log.Infof("Commit created: %q (%s)", fullMessage, shortHash(hash))

	if pushErr := it.git.Push(ctx); pushErr != nil {
		return fmt.Errorf("error pushing to git: %w", pushErr)
	}
	it.log.Info("Changes pushed to remote repository.")

	tagName, ok := updates.TagName()
	if !ok {
		return nil
	}
	return it.tag(ctx, tagName)
}

func (it *PublishCommand) tag(ctx context.Context, tagName string) error {
	it.warnIfNotNewest(ctx, tagName)

	if err := it.git.CreateTag(ctx, tagName); err != nil {
		return fmt.Errorf("failed to create and push tag: %w", err)
	}
	if err := it.git.PushTag(ctx, tagName); err != nil {
		return fmt.Errorf("failed to create and push tag: %w", err)
	}
	it.log.Infof("Tag created and pushed: %s", tagName)
	return nil
}

// warnIfNotNewest logs a warning when an existing release tag is at or above tagName.
func (it *PublishCommand) warnIfNotNewest(ctx context.Context, tagName string) {
	tags, err := it.git.Tags(ctx)
	if err != nil {
		it.log.Debugf("Could not list tags: %v", err)
		return
	}

	latest := LatestReleaseTag(tags)
	if latest == "" {
		return
	}
	if semver.Compare(tagSemver(tagName), tagSemver(latest)) <= 0 {
		it.log.Warnf("Tag %s is not newer than the existing tag %s", tagName, latest)
	}
}

// LatestReleaseTag returns the highest "ver-X.Y.Z" tag, or "" when there is none.
func LatestReleaseTag(tags []string) string {
	latest := ""
	for _, tag := range tags {
		if !semver.IsValid(tagSemver(tag)) {
			continue
		}
		if latest == "" || semver.Compare(tagSemver(tag), tagSemver(latest)) > 0 {
			latest = tag
		}
	}
	return latest
}

// tagSemver converts "ver-1.2.3" into "v1.2.3"; other names become invalid semver.
func tagSemver(tag string) string {
	version, ok := strings.CutPrefix(tag, entities.TagPrefix)
	if !ok {
		return ""
	}
	return "v" + version
}

func shortHash(hash string) string {
	const shortLen = 7
	if len(hash) > shortLen {
		return hash[:shortLen]
	}
	return hash
}
