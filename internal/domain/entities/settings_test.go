//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	"github.com/rios0rios0/autoversioner/test/domain/entitybuilders"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const jsonConfig = `{
  "files": [
    {"path": "package.json", "type": "json"},
    {"path": ".env", "type": "env", "key": "APP_VERSION"}
  ],
  "subprojects": [
    {"dir": "packages/api", "files": [{"path": "package.json", "type": "json", "field": "version"}]}
  ],
  "changeEnv": true,
  "skipGitCheck": true
}`

const yamlConfig = `files:
  - path: package.json
    type: json
  - path: .env
    type: env
    key: APP_VERSION
subprojects:
  - dir: packages/api
    files:
      - path: package.json
        type: json
        field: version
changeEnv: true
skipGitCheck: true
`

const hclConfig = `change_env     = true
skip_git_check = true

file {
  path = "package.json"
  type = "json"
}

file {
  path = ".env"
  type = "env"
  key  = "APP_VERSION"
}

subproject "packages/api" {
  file {
    path  = "package.json"
    type  = "json"
    field = "version"
  }
}
`

func TestNewSettings(t *testing.T) {
	t.Parallel()

	formats := map[string]string{
		"autoVersioner.conf.json": jsonConfig,
		"autoversioner.yaml":      yamlConfig,
		"autoversioner.hcl":       hclConfig,
	}

	for name, content := range formats {
		t.Run("should decode "+filepath.Ext(name)+" configurations", func(t *testing.T) {
			t.Parallel()

			// given
			path := writeConfig(t, name, content)

			// when
			settings, err := entities.NewSettings(path)

			// then
			require.NoError(t, err)
			assert.Equal(t, []entities.FileTarget{
				{Path: "package.json", Kind: entities.FileKindJSON},
				{Path: ".env", Kind: entities.FileKindEnv, Key: "APP_VERSION"},
			}, settings.Files)
			require.Len(t, settings.Subprojects, 1)
			assert.Equal(t, "packages/api", settings.Subprojects[0].Dir)
			assert.Equal(t, []entities.FileTarget{
				{Path: "package.json", Kind: entities.FileKindJSON, Field: "version"},
			}, settings.Subprojects[0].Files)
			require.NotNil(t, settings.ChangeEnv)
			assert.True(t, *settings.ChangeEnv)
			assert.True(t, settings.SkipGitCheck)
			assert.True(t, settings.DeclaresMainFiles())
		})
	}

	t.Run("should leave changeEnv undecided when absent", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "autoVersioner.conf.json", `{"subprojects": [{"dir": "api", "files": []}]}`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Nil(t, settings.ChangeEnv)
		assert.False(t, settings.DeclaresMainFiles())
	})

	t.Run("should return ErrInvalidSettings for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.json")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
	})

	t.Run("should return ErrInvalidSettings for malformed content", func(t *testing.T) {
		t.Parallel()

		for name, content := range map[string]string{
			"bad.json": `{"files": [`,
			"bad.yaml": "files: [\n  - path",
			"bad.hcl":  `file { path = }`,
		} {
			// given
			path := writeConfig(t, name, content)

			// when
			_, err := entities.NewSettings(path)

			// then
			require.ErrorIs(t, err, entities.ErrInvalidSettings, name)
		}
	})

	t.Run("should reject invalid declarations", func(t *testing.T) {
		t.Parallel()

		cases := map[string]string{
			"missing path":            `{"files": [{"type": "json"}]}`,
			"unknown type":            `{"files": [{"path": "Cargo.toml", "type": "toml"}]}`,
			"empty subproject dir":    `{"subprojects": [{"dir": " ", "files": []}]}`,
			"reserved main dir":       `{"subprojects": [{"dir": "main", "files": []}]}`,
			"duplicate subproject":    `{"subprojects": [{"dir": "api", "files": []}, {"dir": "api", "files": []}]}`,
			"invalid subproject file": `{"subprojects": [{"dir": "api", "files": [{"path": "", "type": "json"}]}]}`,
		}

		for name, content := range cases {
			// given
			path := writeConfig(t, "autoVersioner.conf.json", content)

			// when
			_, err := entities.NewSettings(path)

			// then
			require.ErrorIs(t, err, entities.ErrInvalidSettings, name)
		}
	})
}

func TestNewSettingsHCLEnvironment(t *testing.T) {
	// given
	t.Setenv("AUTOVERSIONER_TEST_KEY", "CUSTOM_VERSION")
	path := writeConfig(t, "autoversioner.hcl", `file {
  path = ".env"
  type = "env"
  key  = env.AUTOVERSIONER_TEST_KEY
}
`)

	// when
	settings, err := entities.NewSettings(path)

	// then
	require.NoError(t, err)
	require.Len(t, settings.Files, 1)
	assert.Equal(t, "CUSTOM_VERSION", settings.Files[0].Key)
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("should find a configuration in the .config directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".config"), 0o750))
		expected := filepath.Join(dir, ".config", "autoversioner.yaml")
		require.NoError(t, os.WriteFile(expected, []byte(yamlConfig), 0o600))

		// when
		path, err := entities.FindConfigFile(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, path)
	})

	t.Run("should prefer the working directory over other locations", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "autoversioner.hcl"), []byte(hclConfig), 0o600))
		expected := filepath.Join(dir, "autoVersioner.conf.json")
		require.NoError(t, os.WriteFile(expected, []byte(jsonConfig), 0o600))

		// when
		path, err := entities.FindConfigFile(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, path)
	})

	t.Run("should return an error when nothing is found", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		_, err := entities.FindConfigFile(dir)

		// then
		require.Error(t, err)
	})
}

func TestSettingsDefaults(t *testing.T) {
	t.Parallel()

	t.Run("should version the main package.json and leave .env alone", func(t *testing.T) {
		t.Parallel()

		// when
		settings := entities.DefaultSettings()

		// then
		assert.Equal(t, []entities.FileTarget{{Path: "package.json", Kind: entities.FileKindJSON}}, settings.Files)
		require.NotNil(t, settings.ChangeEnv)
		assert.False(t, *settings.ChangeEnv)
		assert.Empty(t, settings.Subprojects)
	})
}

func TestSettingsWithChangeEnv(t *testing.T) {
	t.Parallel()

	t.Run("should add the default env target when enabled", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		effective := settings.WithChangeEnv(true)

		// then
		assert.Len(t, settings.Files, 1)
		require.Len(t, effective.Files, 2)
		assert.Equal(t, entities.FileTarget{Path: ".env", Kind: entities.FileKindEnv, Key: "VERSION"}, effective.Files[1])
		assert.True(t, *effective.ChangeEnv)
	})

	t.Run("should keep an env target already declared", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().WithEnvFile("config/.env", "APP_VERSION").BuildSettings()

		// when
		effective := settings.WithChangeEnv(true)

		// then
		assert.Equal(t, settings.Files, effective.Files)
	})

	t.Run("should not add anything when disabled", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		effective := settings.WithChangeEnv(false)

		// then
		assert.Equal(t, settings.Files, effective.Files)
		assert.False(t, *effective.ChangeEnv)
	})
}
