//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	"github.com/rios0rios0/autoversioner/internal/domain/repositories"
)

// ApplyCall records a single invocation of Apply.
type ApplyCall struct {
	Target     entities.FileTarget
	NewVersion string
	BaseDir    string
}

// SpyMutatorRepository implements repositories.MutatorRepository as a configurable spy.
type SpyMutatorRepository struct {
	FileKind entities.FileKind
	// Failing lists target paths for which Apply reports failure
	Failing map[string]bool
	// spy: calls received
	Calls []ApplyCall
}

var _ repositories.MutatorRepository = (*SpyMutatorRepository)(nil)

func (s *SpyMutatorRepository) Kind() entities.FileKind { return s.FileKind }

func (s *SpyMutatorRepository) Apply(target entities.FileTarget, newVersion, baseDir string) bool {
	s.Calls = append(s.Calls, ApplyCall{Target: target, NewVersion: newVersion, BaseDir: baseDir})
	return !s.Failing[target.Path]
}
