package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	"github.com/rios0rios0/autoversioner/internal/domain/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(settings *entities.Settings) []ProjectStatus
}

// ProjectStatus describes the versioning state of one project.
type ProjectStatus struct {
	ID             string
	Source         string // Resolved version source path, empty when the project has none
	Files          int
	CurrentVersion string
	NextVersions   map[entities.BumpKind]string
	Err            error
}

// ListCommand reports every declared project without writing anything.
type ListCommand struct {
	reader repositories.VersionReader
	log    logger.FieldLogger
}

// NewListCommand creates a new ListCommand.
func NewListCommand(reader repositories.VersionReader, log logger.FieldLogger) *ListCommand {
	return &ListCommand{reader: reader, log: log}
}

// Execute reads the current version of every project in declaration order.
func (it *ListCommand) Execute(settings *entities.Settings) []ProjectStatus {
	groups := settings.Groups()
	statuses := make([]ProjectStatus, 0, len(groups))

	for _, group := range groups {
		status := ProjectStatus{ID: group.ID, Files: len(group.Files)}

		source, ok := group.VersionSource()
		if !ok {
			statuses = append(statuses, status)
			continue
		}
		status.Source = source.ResolvePath(group.BaseDir)

		current, err := it.reader.ReadVersion(status.Source, source.VersionField())
		if err != nil {
			it.log.Debugf("Could not read version of %s: %v", group.ID, err)
			status.Err = err
			statuses = append(statuses, status)
			continue
		}
		status.CurrentVersion = current

		status.NextVersions = make(map[entities.BumpKind]string, len(entities.BumpKinds()))
		for _, kind := range entities.BumpKinds() {
			next, calcErr := entities.CalculateNewVersion(current, kind)
			if calcErr != nil {
				status.Err = calcErr
				status.NextVersions = nil
				break
			}
			status.NextVersions[kind] = next
		}
		statuses = append(statuses, status)
	}

	return statuses
}
