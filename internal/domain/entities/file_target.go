package entities

import (
	"path"
	"path/filepath"
	"strings"
)

// FileKind identifies how a FileTarget is rewritten.
type FileKind string

const (
	FileKindJSON FileKind = "json"
	FileKindEnv  FileKind = "env"
)

const (
	// DefaultVersionField is the JSON key rewritten when a target declares no field.
	DefaultVersionField = "version"

	// VersionSourceFile is the file name that marks a JSON target as a version source.
	VersionSourceFile = "package.json"
)

// FileTarget is one file rewritten on every version bump.
type FileTarget struct {
	Path  string   `json:"path"            yaml:"path"`
	Kind  FileKind `json:"type"            yaml:"type"`
	Field string   `json:"field,omitempty" yaml:"field,omitempty"`
	Key   string   `json:"key,omitempty"   yaml:"key,omitempty"`
}

// VersionField returns the JSON key to rewrite, falling back to "version".
func (t FileTarget) VersionField() string {
	if t.Field == "" {
		return DefaultVersionField
	}
	return t.Field
}

// IsVersionSource reports whether the target can seed the version of its group.
func (t FileTarget) IsVersionSource() bool {
	if t.Kind != FileKindJSON {
		return false
	}
	// backslash-separated paths match too
	normalized := strings.ReplaceAll(t.Path, "\\", "/")
	return path.Base(normalized) == VersionSourceFile
}

// ResolvePath joins the target path onto baseDir. An empty baseDir leaves the path untouched.
func (t FileTarget) ResolvePath(baseDir string) string {
	if baseDir == "" {
		return t.Path
	}
	return filepath.Join(baseDir, t.Path)
}
