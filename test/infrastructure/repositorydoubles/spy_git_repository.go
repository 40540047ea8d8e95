//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autoversioner/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
type SpyGitRepository struct {
	// --- HasChanges ---
	Dirty         bool
	HasChangesErr error

	// --- StageAll ---
	StageErr   error
	StageCalls int

	// --- Commit ---
	CommitHash     string
	CommitErr      error
	CommitMessages []string

	// --- Push ---
	PushErr   error
	PushCalls int

	// --- Tags ---
	ExistingTags []string
	TagsErr      error

	// --- CreateTag / PushTag ---
	CreateTagErr error
	PushTagErr   error
	CreatedTags  []string
	PushedTags   []string

	// spy: method names in call order
	Calls []string
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (s *SpyGitRepository) HasChanges(_ context.Context) (bool, error) {
	s.Calls = append(s.Calls, "HasChanges")
	return s.Dirty, s.HasChangesErr
}

func (s *SpyGitRepository) StageAll(_ context.Context) error {
	s.Calls = append(s.Calls, "StageAll")
	s.StageCalls++
	return s.StageErr
}

func (s *SpyGitRepository) Commit(_ context.Context, message string) (string, error) {
	s.Calls = append(s.Calls, "Commit")
	s.CommitMessages = append(s.CommitMessages, message)
	if s.CommitErr != nil {
		return "", s.CommitErr
	}
	if s.CommitHash == "" {
		return "0123456789abcdef", nil
	}
	return s.CommitHash, nil
}

func (s *SpyGitRepository) Push(_ context.Context) error {
	s.Calls = append(s.Calls, "Push")
	s.PushCalls++
	return s.PushErr
}

func (s *SpyGitRepository) Tags(_ context.Context) ([]string, error) {
	s.Calls = append(s.Calls, "Tags")
	return s.ExistingTags, s.TagsErr
}

func (s *SpyGitRepository) CreateTag(_ context.Context, name string) error {
	s.Calls = append(s.Calls, "CreateTag")
	s.CreatedTags = append(s.CreatedTags, name)
	return s.CreateTagErr
}

func (s *SpyGitRepository) PushTag(_ context.Context, name string) error {
	s.Calls = append(s.Calls, "PushTag")
	s.PushedTags = append(s.PushedTags, name)
	return s.PushTagErr
}
