package repositories

import "github.com/rios0rios0/autoversioner/internal/domain/entities"

// MutatorRepository rewrites the version held by one kind of file target.
// Failures are soft: they are logged and reported as false, never returned,
// so that one broken file does not stop its siblings from being updated.
type MutatorRepository interface {
	// Kind returns the file kind this mutator handles.
	Kind() entities.FileKind

	// Apply writes newVersion into the target resolved against baseDir.
	Apply(target entities.FileTarget, newVersion, baseDir string) bool
}

// VersionReader reads the current version out of a version-source file.
type VersionReader interface {
	// ReadVersion returns the string value stored under field in the JSON object at path.
	ReadVersion(path, field string) (string, error)
}
