package repositories

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	domainRepos "github.com/rios0rios0/autoversioner/internal/domain/repositories"
	"github.com/rios0rios0/autoversioner/internal/infrastructure/repositories/envfile"
	"github.com/rios0rios0/autoversioner/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/autoversioner/internal/infrastructure/repositories/gitrepo"
	"github.com/rios0rios0/autoversioner/internal/infrastructure/repositories/jsonfile"
	"github.com/rios0rios0/autoversioner/internal/infrastructure/repositories/terminal"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Host filesystem rooted at the working directory
	if err := container.Provide(func() (domainRepos.FileRepository, error) {
		return filesystem.NewLocalFileRepository()
	}); err != nil {
		return err
	}

	// Version source reader shares the JSON decoding of the JSON mutator
	if err := container.Provide(func(
		files domainRepos.FileRepository, log logger.FieldLogger,
	) domainRepos.VersionReader {
		return jsonfile.NewMutatorRepository(files, log)
	}); err != nil {
		return err
	}

	// Register mutator registry with every file kind
	if err := container.Provide(func(log logger.FieldLogger) *MutatorRegistry {
		reg := NewMutatorRegistry()
		reg.Register(entities.FileKindJSON, func(files domainRepos.FileRepository) domainRepos.MutatorRepository {
			return jsonfile.NewMutatorRepository(files, log)
		})
		reg.Register(entities.FileKindEnv, func(files domainRepos.FileRepository) domainRepos.MutatorRepository {
			return envfile.NewMutatorRepository(files, log)
		})
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func(log logger.FieldLogger) domainRepos.GitRepository {
		return gitrepo.NewGitRepository(".", log)
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.PromptRepository {
		return terminal.NewPromptRepository(os.Stdin, os.Stdout)
	}); err != nil {
		return err
	}

	return nil
}
