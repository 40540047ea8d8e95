//go:build unit

package entities_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
)

func TestFileTarget(t *testing.T) {
	t.Parallel()

	t.Run("should default the version field", func(t *testing.T) {
		t.Parallel()

		// given
		target := entities.FileTarget{Path: "package.json", Kind: entities.FileKindJSON}

		// when
		field := target.VersionField()

		// then
		assert.Equal(t, "version", field)
	})

	t.Run("should keep an explicit version field", func(t *testing.T) {
		t.Parallel()

		// given
		target := entities.FileTarget{Path: "app.json", Kind: entities.FileKindJSON, Field: "expo.version"}

		// when
		field := target.VersionField()

		// then
		assert.Equal(t, "expo.version", field)
	})

	t.Run("should recognize package.json in any directory as version source", func(t *testing.T) {
		t.Parallel()

		for _, path := range []string{"package.json", "./package.json", "web/package.json", `web\package.json`} {
			// given
			target := entities.FileTarget{Path: path, Kind: entities.FileKindJSON}

			// when
			ok := target.IsVersionSource()

			// then
			assert.True(t, ok, path)
		}
	})

	t.Run("should not treat other files as version source", func(t *testing.T) {
		t.Parallel()

		for _, target := range []entities.FileTarget{
			{Path: "app.json", Kind: entities.FileKindJSON},
			{Path: "my-package.json", Kind: entities.FileKindJSON},
			{Path: "package.json", Kind: entities.FileKindEnv},
		} {
			// when
			ok := target.IsVersionSource()

			// then
			assert.False(t, ok, target.Path)
		}
	})

	t.Run("should resolve paths below the base directory", func(t *testing.T) {
		t.Parallel()

		// given
		target := entities.FileTarget{Path: "package.json", Kind: entities.FileKindJSON}

		// when
		inMain := target.ResolvePath("")
		inSub := target.ResolvePath("packages/api")

		// then
		assert.Equal(t, "package.json", inMain)
		assert.Equal(t, filepath.Join("packages", "api", "package.json"), inSub)
	})
}
