package entities

import (
	"slices"

	logger "github.com/sirupsen/logrus"
)

// MainProjectID identifies the main project in selections and summaries.
const MainProjectID = "main"

// ProjectGroup is one independently versioned unit: the main project or a subproject.
type ProjectGroup struct {
	ID      string
	BaseDir string
	Files   []FileTarget
}

// VersionSource returns the first JSON target named package.json, if any.
func (g ProjectGroup) VersionSource() (FileTarget, bool) {
	for _, file := range g.Files {
		if file.IsVersionSource() {
			return file, true
		}
	}
	return FileTarget{}, false
}

// ProjectIDs lists every project id in declaration order, main first.
func (it *Settings) ProjectIDs() []string {
	ids := make([]string, 0, len(it.Subprojects)+1)
	ids = append(ids, MainProjectID)
	for _, sub := range it.Subprojects {
		ids = append(ids, sub.Dir)
	}
	return ids
}

// Groups returns every declared project as a group, main first.
func (it *Settings) Groups() []ProjectGroup {
	groups := make([]ProjectGroup, 0, len(it.Subprojects)+1)
	groups = append(groups, ProjectGroup{ID: MainProjectID, Files: it.Files})
	for _, sub := range it.Subprojects {
		groups = append(groups, ProjectGroup{ID: sub.Dir, BaseDir: sub.Dir, Files: sub.Files})
	}
	return groups
}

// EffectiveSelection materializes the projects to update. A nil request
// selects every project; an empty one selects none. Ids that name no project are dropped with a warning.
func (it *Settings) EffectiveSelection(requested []string, log logger.FieldLogger) []string {
	available := it.ProjectIDs()
	if requested == nil {
		return available
	}

	selection := make([]string, 0, len(requested))
	for _, id := range requested {
		if !slices.Contains(available, id) {
			log.Warnf("Unknown project %q requested, ignoring it", id)
			continue
		}
		if !slices.Contains(selection, id) {
			selection = append(selection, id)
		}
	}
	return selection
}

// ResolveGroups returns the groups to process: declared order, filtered by the
// effective selection, and only those with a version source.
func (it *Settings) ResolveGroups(requested []string, log logger.FieldLogger) []ProjectGroup {
	selection := it.EffectiveSelection(requested, log)

	var groups []ProjectGroup
	for _, group := range it.Groups() {
		if !slices.Contains(selection, group.ID) {
			continue
		}
		if _, ok := group.VersionSource(); !ok {
			if group.ID == MainProjectID {
				log.Debugf("No %s found for the main project, skipping it", VersionSourceFile)
			} else {
				log.Warnf("No %s found for subproject: %s", VersionSourceFile, group.ID)
			}
			continue
		}
		groups = append(groups, group)
	}
	return groups
}
