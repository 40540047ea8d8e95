package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultEnvPath is the env file added when the user opts into env updates without declaring one.
	DefaultEnvPath = ".env"

	// DefaultEnvKey is the variable rewritten in DefaultEnvPath.
	DefaultEnvKey = "VERSION"
)

// Subproject is a separately versioned directory below the main project.
type Subproject struct {
	Dir   string       `json:"dir"   yaml:"dir"`
	Files []FileTarget `json:"files" yaml:"files"`
}

// Settings is the validated configuration of one invocation.
type Settings struct {
	Files        []FileTarget `json:"files"        yaml:"files"`
	Subprojects  []Subproject `json:"subprojects"  yaml:"subprojects"`
	ChangeEnv    *bool        `json:"changeEnv"    yaml:"changeEnv"`
	SkipGitCheck bool         `json:"skipGitCheck" yaml:"skipGitCheck"`

	// declaredFiles is false when the main project files were filled in by defaults.
	declaredFiles bool
}

// DefaultSettings is used when no configuration file exists: the main project
// is versioned through ./package.json.
func DefaultSettings() *Settings {
	changeEnv := false
	return &Settings{
		Files:     []FileTarget{{Path: VersionSourceFile, Kind: FileKindJSON}},
		ChangeEnv: &changeEnv,
	}
}

// NewSettings reads, decodes and validates a configuration file. The format is
// chosen by extension: .json, .yaml/.yml or .hcl.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file %q: %w", ErrInvalidSettings, path, err)
	}

	settings, err := decodeSettings(path, data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse config file %q: %w", ErrInvalidSettings, path, err)
	}

	settings.declaredFiles = len(settings.Files) > 0
	if validateErr := validate(settings); validateErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSettings, path, validateErr)
	}

	return settings, nil
}

func decodeSettings(path string, data []byte) (*Settings, error) {
	var settings Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return nil, err
		}
	case ".hcl":
		return decodeHCLSettings(path, data)
	default:
		if err := json.Unmarshal(data, &settings); err != nil {
			return nil, err
		}
	}
	return &settings, nil
}

// FindConfigFile searches for a configuration file below dir in the standard
// locations. Returns the path to the first file found or an error if none is found.
func FindConfigFile(dir string) (string, error) {
	locations := []string{
		".",
		".config",
		"configs",
	}

	patterns := []string{
		"autoVersioner.conf.json",
		".autoversioner.json",
		"autoversioner.yaml",
		"autoversioner.yml",
		".autoversioner.yaml",
		"autoversioner.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(dir, loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// DeclaresMainFiles reports whether the configuration listed main project files itself.
func (it *Settings) DeclaresMainFiles() bool {
	return it.declaredFiles
}

// WithChangeEnv returns a copy carrying the given changeEnv decision. When it is
// true and the main project has no env target, the default .env VERSION key is added.
func (it *Settings) WithChangeEnv(changeEnv bool) *Settings {
	effective := *it
	effective.ChangeEnv = &changeEnv
	effective.Files = slices.Clone(it.Files)

	if !changeEnv {
		return &effective
	}
	for _, file := range effective.Files {
		if file.Kind == FileKindEnv {
			return &effective
		}
	}
	effective.Files = append(effective.Files, FileTarget{
		Path: DefaultEnvPath,
		Kind: FileKindEnv,
		Key:  DefaultEnvKey,
	})
	return &effective
}

// validate checks for required configuration values.
func validate(settings *Settings) error {
	if err := validateFiles("files", settings.Files); err != nil {
		return err
	}

	seen := make(map[string]bool, len(settings.Subprojects))
	for i, sub := range settings.Subprojects {
		if strings.TrimSpace(sub.Dir) == "" {
			return fmt.Errorf("subprojects[%d].dir is required", i)
		}
		if sub.Dir == MainProjectID {
			return fmt.Errorf("subprojects[%d].dir must not be %q", i, MainProjectID)
		}
		if seen[sub.Dir] {
			return fmt.Errorf("subprojects[%d].dir %q is declared twice", i, sub.Dir)
		}
		seen[sub.Dir] = true

		if err := validateFiles(fmt.Sprintf("subprojects[%d].files", i), sub.Files); err != nil {
			return err
		}
	}

	return nil
}

func validateFiles(prefix string, files []FileTarget) error {
	for i, file := range files {
		if strings.TrimSpace(file.Path) == "" {
			return fmt.Errorf("%s[%d].path is required", prefix, i)
		}
		switch file.Kind {
		case FileKindJSON, FileKindEnv:
		default:
			return fmt.Errorf("%s[%d].type must be %q or %q, got %q",
				prefix, i, FileKindJSON, FileKindEnv, file.Kind)
		}
	}
	return nil
}
