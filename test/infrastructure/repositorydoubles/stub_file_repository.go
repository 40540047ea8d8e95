//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"os"

	"github.com/rios0rios0/autoversioner/internal/domain/repositories"
)

// StubFileRepository implements repositories.FileRepository in memory.
// Configure Files, ReadErrs and WriteErrs, then inspect Files and Writes.
type StubFileRepository struct {
	Files     map[string]string // path -> content
	ReadErrs  map[string]error  // path -> error returned by ReadFile
	WriteErrs map[string]error  // path -> error returned by WriteFile
	// spy: paths written, in call order
	Writes []string
}

var _ repositories.FileRepository = (*StubFileRepository)(nil)

// NewStubFileRepository creates a stub holding the given files.
func NewStubFileRepository(files map[string]string) *StubFileRepository {
	if files == nil {
		files = make(map[string]string)
	}
	return &StubFileRepository{
		Files:     files,
		ReadErrs:  make(map[string]error),
		WriteErrs: make(map[string]error),
	}
}

func (s *StubFileRepository) ReadFile(path string) ([]byte, error) {
	if err := s.ReadErrs[path]; err != nil {
		return nil, err
	}
	content, ok := s.Files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	return []byte(content), nil
}

func (s *StubFileRepository) WriteFile(path string, data []byte) error {
	s.Writes = append(s.Writes, path)
	if err := s.WriteErrs[path]; err != nil {
		return err
	}
	s.Files[path] = string(data)
	return nil
}
