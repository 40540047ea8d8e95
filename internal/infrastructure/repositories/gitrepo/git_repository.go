package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autoversioner/internal/domain/repositories"
)

const remoteName = "origin"

// GitRepository implements repositories.GitRepository with go-git on the
// repository containing dir. The repository is opened on first use.
type GitRepository struct {
	dir  string
	log  logger.FieldLogger
	repo *git.Repository
}

var _ repositories.GitRepository = (*GitRepository)(nil)

// NewGitRepository creates a GitRepository for the working copy containing dir.
func NewGitRepository(dir string, log logger.FieldLogger) *GitRepository {
	return &GitRepository{dir: dir, log: log}
}

func (it *GitRepository) HasChanges(_ context.Context) (bool, error) {
	worktree, err := it.worktree()
	if err != nil {
		return false, err
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("git status: %w", err)
	}
	return !status.IsClean(), nil
}

func (it *GitRepository) StageAll(_ context.Context) error {
	worktree, err := it.worktree()
	if err != nil {
		return err
	}

	//nolint:exhaustruct // Minimal AddOptions initialization with required fields only
	if addErr := worktree.AddWithOptions(&git.AddOptions{All: true}); addErr != nil {
		return fmt.Errorf("git add: %w", addErr)
	}
	return nil
}

func (it *GitRepository) Commit(_ context.Context, message string) (string, error) {
	repo, err := it.open()
	if err != nil {
		return "", err
	}
	worktree, err := it.worktree()
	if err != nil {
		return "", err
	}

	author, err := signature(repo)
	if err != nil {
		return "", err
	}

	//nolint:exhaustruct // Minimal CommitOptions initialization with required fields only
	hash, err := worktree.Commit(message, &git.CommitOptions{Author: author})
	if err != nil {
		return "", fmt.Errorf("git commit: %w", err)
	}
	return hash.String(), nil
}

func (it *GitRepository) Push(ctx context.Context) error {
	repo, err := it.open()
	if err != nil {
		return err
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return errors.New("HEAD is detached, cannot push the current branch")
	}

	refSpec := config.RefSpec(fmt.Sprintf("%s:%s", head.Name(), head.Name()))
	return it.push(ctx, repo, refSpec)
}

func (it *GitRepository) Tags(_ context.Context) ([]string, error) {
	repo, err := it.open()
	if err != nil {
		return nil, err
	}

	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer iter.Close()

	var names []string
	if forErr := iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	}); forErr != nil {
		return nil, fmt.Errorf("failed to list tags: %w", forErr)
	}
	return names, nil
}

func (it *GitRepository) CreateTag(_ context.Context, name string) error {
	repo, err := it.open()
	if err != nil {
		return err
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if _, tagErr := repo.CreateTag(name, head.Hash(), nil); tagErr != nil {
		return fmt.Errorf("git tag %s: %w", name, tagErr)
	}
	return nil
}

func (it *GitRepository) PushTag(ctx context.Context, name string) error {
	repo, err := it.open()
	if err != nil {
		return err
	}

	tagRef := plumbing.NewTagReferenceName(name)
	return it.push(ctx, repo, config.RefSpec(fmt.Sprintf("%s:%s", tagRef, tagRef)))
}

func (it *GitRepository) push(ctx context.Context, repo *git.Repository, refSpec config.RefSpec) error {
	remote, err := repo.Remote(remoteName)
	if err != nil {
		return fmt.Errorf("failed to find remote %q: %w", remoteName, err)
	}

	url := ""
	if urls := remote.Config().URLs; len(urls) > 0 {
		url = urls[0]
	}

	it.log.Debugf("Pushing %s to %s", refSpec, remoteName)
	//nolint:exhaustruct // Minimal PushOptions initialization with required fields only
	pushErr := repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remoteName,
		RefSpecs:   []config.RefSpec{refSpec},
		Auth:       resolveAuth(url),
	})
	if pushErr != nil && !errors.Is(pushErr, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("git push %s%s: %w", refSpec, authHint(url), pushErr)
	}
	return nil
}

func (it *GitRepository) open() (*git.Repository, error) {
	if it.repo != nil {
		return it.repo, nil
	}

	//nolint:exhaustruct // Minimal PlainOpenOptions initialization with required fields only
	repo, err := git.PlainOpenWithOptions(it.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", it.dir, err)
	}
	it.repo = repo
	return repo, nil
}

func (it *GitRepository) worktree() (*git.Worktree, error) {
	repo, err := it.open()
	if err != nil {
		return nil, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}
	return worktree, nil
}

// signature builds the commit author from the merged local and global git config.
func signature(repo *git.Repository) (*object.Signature, error) {
	cfg, err := repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return nil, fmt.Errorf("failed to read git config: %w", err)
	}

	name, email := cfg.User.Name, cfg.User.Email
	if cfg.Author.Name != "" {
		name = cfg.Author.Name
	}
	if cfg.Author.Email != "" {
		email = cfg.Author.Email
	}
	if name == "" || email == "" {
		return nil, errors.New("git user.name and user.email must be configured to commit")
	}

	return &object.Signature{Name: name, Email: email, When: time.Now()}, nil
}
