package entities

import (
	"fmt"
	"strings"
)

const (
	// TagPrefix prefixes the version in every release tag.
	TagPrefix = "ver-"

	fallbackTagProjectID = "master"
)

// VersionUpdate is the version assigned to one project.
type VersionUpdate struct {
	ProjectID  string
	OldVersion string
	NewVersion string
}

// VersionUpdates maps project ids to their new versions, keeping insertion order.
type VersionUpdates struct {
	entries []VersionUpdate
	index   map[string]int
}

// NewVersionUpdates creates an empty summary.
func NewVersionUpdates() *VersionUpdates {
	return &VersionUpdates{index: make(map[string]int)}
}

// Set records the version of a project. A repeated id overwrites in place.
func (it *VersionUpdates) Set(update VersionUpdate) {
	if i, ok := it.index[update.ProjectID]; ok {
		it.entries[i] = update
		return
	}
	it.index[update.ProjectID] = len(it.entries)
	it.entries = append(it.entries, update)
}

// Get returns the new version of a project.
func (it *VersionUpdates) Get(projectID string) (string, bool) {
	i, ok := it.index[projectID]
	if !ok {
		return "", false
	}
	return it.entries[i].NewVersion, true
}

// Entries returns the recorded updates in processing order.
func (it *VersionUpdates) Entries() []VersionUpdate {
	return append([]VersionUpdate(nil), it.entries...)
}

// Len returns the number of recorded projects.
func (it *VersionUpdates) Len() int { return len(it.entries) }

// AsMap returns the summary as a plain project-id to version map.
func (it *VersionUpdates) AsMap() map[string]string {
	result := make(map[string]string, len(it.entries))
	for _, entry := range it.entries {
		result[entry.ProjectID] = entry.NewVersion
	}
	return result
}

// CommitMessage appends "[id: vX.Y.Z, ...]" to message. With no entries the
// message is returned unchanged.
func (it *VersionUpdates) CommitMessage(message string) string {
	if len(it.entries) == 0 {
		return message
	}

	parts := make([]string, 0, len(it.entries))
	for _, entry := range it.entries {
		parts = append(parts, fmt.Sprintf("%s: v%s", entry.ProjectID, entry.NewVersion))
	}
	return strings.TrimSpace(fmt.Sprintf("%s [%s]", message, strings.Join(parts, ", ")))
}

// TagVersion picks the version to tag: main, then master, then the first entry.
func (it *VersionUpdates) TagVersion() (string, bool) {
	if v, ok := it.Get(MainProjectID); ok {
		return v, true
	}
	if v, ok := it.Get(fallbackTagProjectID); ok {
		return v, true
	}
	if len(it.entries) > 0 {
		return it.entries[0].NewVersion, true
	}
	return "", false
}

// TagName returns the release tag for TagVersion, e.g. "ver-1.2.3".
func (it *VersionUpdates) TagName() (string, bool) {
	v, ok := it.TagVersion()
	if !ok {
		return "", false
	}
	return TagPrefix + v, true
}
