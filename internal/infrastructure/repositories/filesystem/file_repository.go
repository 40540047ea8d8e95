package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autoversioner/internal/domain/repositories"
)

const fileMode = 0o644

// FileRepository implements repositories.FileRepository on a billy filesystem.
// Relative paths are resolved against workDir when one is set.
type FileRepository struct {
	fs      billy.Filesystem
	workDir string
}

var _ repositories.FileRepository = (*FileRepository)(nil)

// NewFileRepository creates a FileRepository over fs.
func NewFileRepository(fs billy.Filesystem, workDir string) *FileRepository {
	return &FileRepository{fs: fs, workDir: workDir}
}

// NewLocalFileRepository creates a FileRepository on the host filesystem,
// resolving relative paths against the current working directory.
func NewLocalFileRepository() (*FileRepository, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return NewFileRepository(osfs.New(string(filepath.Separator)), wd), nil
}

func (it *FileRepository) ReadFile(path string) ([]byte, error) {
	data, err := util.ReadFile(it.fs, it.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("error reading file at %s: %w", path, err)
	}
	return data, nil
}

func (it *FileRepository) WriteFile(path string, data []byte) error {
	if err := util.WriteFile(it.fs, it.resolve(path), data, fileMode); err != nil {
		return fmt.Errorf("error writing file at %s: %w", path, err)
	}
	return nil
}

func (it *FileRepository) resolve(path string) string {
	if it.workDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(it.workDir, path)
}

// DryRunFileRepository reads through to another repository and only logs writes.
type DryRunFileRepository struct {
	inner repositories.FileRepository
	log   logger.FieldLogger
}

var _ repositories.FileRepository = (*DryRunFileRepository)(nil)

// NewDryRunFileRepository wraps inner so that nothing is ever written.
func NewDryRunFileRepository(inner repositories.FileRepository, log logger.FieldLogger) *DryRunFileRepository {
	return &DryRunFileRepository{inner: inner, log: log}
}

func (it *DryRunFileRepository) ReadFile(path string) ([]byte, error) {
	return it.inner.ReadFile(path)
}

func (it *DryRunFileRepository) WriteFile(path string, data []byte) error {
	it.log.Infof("[DRY RUN] Would write %d bytes to %s", len(data), path)
	return nil
}
