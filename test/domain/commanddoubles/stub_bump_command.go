//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autoversioner/internal/domain/commands"
	"github.com/rios0rios0/autoversioner/internal/domain/entities"
)

// StubBumpCommand is a stub implementation of commands.Bump.
type StubBumpCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Updates          *entities.VersionUpdates
	LastSettings     *entities.Settings
	LastOpts         commands.BumpOptions
}

var _ commands.Bump = (*StubBumpCommand)(nil)

func (s *StubBumpCommand) Execute(
	settings *entities.Settings,
	opts commands.BumpOptions,
) (*entities.VersionUpdates, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Updates == nil {
		return entities.NewVersionUpdates(), nil
	}
	return s.Updates, nil
}
