//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autoversioner/internal/domain/commands"
	"github.com/rios0rios0/autoversioner/internal/domain/entities"
)

// StubPublishCommand is a stub implementation of commands.Publish.
type StubPublishCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastUpdates      *entities.VersionUpdates
	LastMessage      string
}

var _ commands.Publish = (*StubPublishCommand)(nil)

func (s *StubPublishCommand) Execute(
	_ context.Context,
	updates *entities.VersionUpdates,
	message string,
) error {
	s.ExecuteCallCount++
	s.LastUpdates = updates
	s.LastMessage = message
	return s.ExecuteErr
}
