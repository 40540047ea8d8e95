package repositories

import "github.com/rios0rios0/autoversioner/internal/domain/entities"

// PromptRepository collects release answers from a human.
type PromptRepository interface {
	// SelectBumpKind asks which version component to increment.
	SelectBumpKind() (entities.BumpKind, error)

	// SelectProjects asks which projects to update; defaults are pre-selected.
	SelectProjects(available, defaults []string) ([]string, error)

	// AskCommitMessage asks for the commit message.
	AskCommitMessage() (string, error)

	// Confirm asks a yes/no question.
	Confirm(question string, defaultAnswer bool) (bool, error)
}
