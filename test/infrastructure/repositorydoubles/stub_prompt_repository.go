//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	"github.com/rios0rios0/autoversioner/internal/domain/repositories"
)

// StubPromptRepository implements repositories.PromptRepository with canned answers.
type StubPromptRepository struct {
	BumpKind    entities.BumpKind
	BumpKindErr error

	Projects    []string
	ProjectsErr error

	Message    string
	MessageErr error

	ConfirmAnswer bool
	ConfirmErr    error

	// spy: questions asked, in order
	Asked []string
	// spy: arguments given to SelectProjects
	OfferedProjects []string
}

var _ repositories.PromptRepository = (*StubPromptRepository)(nil)

func (s *StubPromptRepository) SelectBumpKind() (entities.BumpKind, error) {
	s.Asked = append(s.Asked, "bumpKind")
	return s.BumpKind, s.BumpKindErr
}

func (s *StubPromptRepository) SelectProjects(available, _ []string) ([]string, error) {
	s.Asked = append(s.Asked, "projects")
	s.OfferedProjects = available
	return s.Projects, s.ProjectsErr
}

func (s *StubPromptRepository) AskCommitMessage() (string, error) {
	s.Asked = append(s.Asked, "message")
	return s.Message, s.MessageErr
}

func (s *StubPromptRepository) Confirm(_ string, _ bool) (bool, error) {
	s.Asked = append(s.Asked, "confirm")
	return s.ConfirmAnswer, s.ConfirmErr
}
