//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"slices"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	files        []entities.FileTarget
	subprojects  []entities.Subproject
	changeEnv    *bool
	skipGitCheck bool
}

// NewSettingsBuilder creates a new settings builder whose main project is
// versioned through package.json and never touches .env.
func NewSettingsBuilder() *SettingsBuilder {
	b := &SettingsBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.defaults()
	return b
}

func (b *SettingsBuilder) defaults() {
	changeEnv := false
	b.files = []entities.FileTarget{{Path: "package.json", Kind: entities.FileKindJSON}}
	b.subprojects = nil
	b.changeEnv = &changeEnv
	b.skipGitCheck = false
}

// WithFiles replaces the main project files.
func (b *SettingsBuilder) WithFiles(files ...entities.FileTarget) *SettingsBuilder {
	b.files = files
	return b
}

// WithJSONFile appends a JSON target to the main project.
func (b *SettingsBuilder) WithJSONFile(path, field string) *SettingsBuilder {
	b.files = append(b.files, entities.FileTarget{Path: path, Kind: entities.FileKindJSON, Field: field})
	return b
}

// WithEnvFile appends an env target to the main project.
func (b *SettingsBuilder) WithEnvFile(path, key string) *SettingsBuilder {
	b.files = append(b.files, entities.FileTarget{Path: path, Kind: entities.FileKindEnv, Key: key})
	return b
}

// WithSubproject appends a subproject. Without files it gets its own package.json.
func (b *SettingsBuilder) WithSubproject(dir string, files ...entities.FileTarget) *SettingsBuilder {
	if len(files) == 0 {
		files = []entities.FileTarget{{Path: "package.json", Kind: entities.FileKindJSON}}
	}
	b.subprojects = append(b.subprojects, entities.Subproject{Dir: dir, Files: files})
	return b
}

// WithChangeEnv sets the changeEnv flag.
func (b *SettingsBuilder) WithChangeEnv(changeEnv bool) *SettingsBuilder {
	b.changeEnv = &changeEnv
	return b
}

// WithoutChangeEnv leaves changeEnv undecided.
func (b *SettingsBuilder) WithoutChangeEnv() *SettingsBuilder {
	b.changeEnv = nil
	return b
}

// WithSkipGitCheck sets the skipGitCheck flag.
func (b *SettingsBuilder) WithSkipGitCheck(skip bool) *SettingsBuilder {
	b.skipGitCheck = skip
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	subprojects := make([]entities.Subproject, 0, len(b.subprojects))
	for _, sub := range b.subprojects {
		subprojects = append(subprojects, entities.Subproject{Dir: sub.Dir, Files: slices.Clone(sub.Files)})
	}
	var changeEnv *bool
	if b.changeEnv != nil {
		value := *b.changeEnv
		changeEnv = &value
	}
	return &entities.Settings{
		Files:        slices.Clone(b.files),
		Subprojects:  subprojects,
		ChangeEnv:    changeEnv,
		SkipGitCheck: b.skipGitCheck,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.defaults()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	clone := &SettingsBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		files:        slices.Clone(b.files),
		subprojects:  slices.Clone(b.subprojects),
		skipGitCheck: b.skipGitCheck,
	}
	if b.changeEnv != nil {
		value := *b.changeEnv
		clone.changeEnv = &value
	}
	return clone
}
