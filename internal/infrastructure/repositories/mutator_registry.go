package repositories

import (
	"fmt"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	domainRepos "github.com/rios0rios0/autoversioner/internal/domain/repositories"
)

// MutatorFactory creates a MutatorRepository that reads and writes through files.
type MutatorFactory func(files domainRepos.FileRepository) domainRepos.MutatorRepository

// MutatorRegistry manages the mutator implementation of every file kind.
type MutatorRegistry struct {
	factories map[entities.FileKind]MutatorFactory
}

// NewMutatorRegistry creates an empty mutator registry.
func NewMutatorRegistry() *MutatorRegistry {
	return &MutatorRegistry{
		factories: make(map[entities.FileKind]MutatorFactory),
	}
}

// Register adds a mutator factory under the given file kind.
func (r *MutatorRegistry) Register(kind entities.FileKind, factory MutatorFactory) {
	r.factories[kind] = factory
}

// Bind returns one mutator per registered kind, all bound to files. A factory
// whose mutator reports a different kind than it was registered under is an error.
func (r *MutatorRegistry) Bind(
	files domainRepos.FileRepository,
) (map[entities.FileKind]domainRepos.MutatorRepository, error) {
	mutators := make(map[entities.FileKind]domainRepos.MutatorRepository, len(r.factories))
	for kind, factory := range r.factories {
		mutator := factory(files)
		if mutator.Kind() != kind {
			return nil, fmt.Errorf("mutator registered for %q reports file type %q", kind, mutator.Kind())
		}
		mutators[kind] = mutator
	}
	return mutators, nil
}
