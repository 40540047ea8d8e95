package repositories

import "context"

// GitRepository is the version-control working copy releases are published from.
type GitRepository interface {
	// HasChanges reports whether the working tree differs from HEAD.
	HasChanges(ctx context.Context) (bool, error)

	// StageAll stages every change in the working tree.
	StageAll(ctx context.Context) error

	// Commit records the staged changes and returns the commit hash.
	Commit(ctx context.Context, message string) (string, error)

	// Push pushes the current branch to its remote.
	Push(ctx context.Context) error

	// Tags lists the names of every tag in the repository.
	Tags(ctx context.Context) ([]string, error)

	// CreateTag creates a lightweight tag on HEAD.
	CreateTag(ctx context.Context, name string) error

	// PushTag pushes a single tag to the remote.
	PushTag(ctx context.Context, name string) error
}
