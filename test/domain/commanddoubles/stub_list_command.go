//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autoversioner/internal/domain/commands"
	"github.com/rios0rios0/autoversioner/internal/domain/entities"
)

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	Statuses         []commands.ProjectStatus
	LastSettings     *entities.Settings
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(settings *entities.Settings) []commands.ProjectStatus {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Statuses
}
