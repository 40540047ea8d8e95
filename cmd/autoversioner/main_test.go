//go:build unit

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	t.Run("should exit with 2 on configuration errors", func(t *testing.T) {
		t.Parallel()

		// given
		err := fmt.Errorf("project api (api/package.json): %w", entities.ErrInvalidVersionFormat)

		// when
		code := exitCode(err)

		// then
		assert.Equal(t, 2, code)
	})

	t.Run("should exit with 1 on runtime errors", func(t *testing.T) {
		t.Parallel()

		// given
		err := errors.New("error pushing to git: rejected")

		// when
		code := exitCode(err)

		// then
		assert.Equal(t, 1, code)
	})
}

func TestBuildRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("should wire global flags, release flags and the list subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		app := injectAppContext(newLogger())

		// when
		root := buildRootCommand(app.GetRootController())
		addSubcommands(root, app)

		// then
		assert.Equal(t, "autoversioner", root.Use)
		for _, name := range []string{"config", "dry-run", "verbose"} {
			assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
		}
		for _, name := range []string{"type", "project", "message", "skip-git"} {
			assert.NotNil(t, root.Flags().Lookup(name), name)
		}
		list, _, err := root.Find([]string{"list"})
		require.NoError(t, err)
		assert.Equal(t, "list", list.Name())
	})
}
