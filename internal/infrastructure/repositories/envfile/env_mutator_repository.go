package envfile

import (
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	"github.com/rios0rios0/autoversioner/internal/domain/repositories"
)

// MutatorRepository rewrites or appends a KEY=VALUE line in an env file.
type MutatorRepository struct {
	files repositories.FileRepository
	log   logger.FieldLogger
}

var _ repositories.MutatorRepository = (*MutatorRepository)(nil)

// NewMutatorRepository creates an env mutator writing through files.
func NewMutatorRepository(files repositories.FileRepository, log logger.FieldLogger) *MutatorRepository {
	return &MutatorRepository{files: files, log: log}
}

func (it *MutatorRepository) Kind() entities.FileKind { return entities.FileKindEnv }

// Apply is a no-op that succeeds when the target declares no key.
func (it *MutatorRepository) Apply(target entities.FileTarget, newVersion, baseDir string) bool {
	path := target.ResolvePath(baseDir)
	if target.Key == "" {
		it.log.Debugf("No key configured for ENV file %s, skipping it", path)
		return true
	}
	it.log.Infof("Updating ENV file %s, key %s to %s", path, target.Key, newVersion)

	data, err := it.files.ReadFile(path)
	if err != nil {
		it.log.Errorf("Failed to update version in %s: %v", path, err)
		return false
	}

	updated := SetKey(string(data), target.Key, newVersion)
	if writeErr := it.files.WriteFile(path, []byte(updated)); writeErr != nil {
		it.log.Errorf("Failed to update version in %s: %v", path, writeErr)
		return false
	}
	return true
}

// SetKey replaces the first "key=..." line of content with "key=value", or
// appends it when no such line exists.
func SetKey(content, key, value string) string {
	line := key + "=" + value
	pattern := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `=.*$`)

	if loc := pattern.FindStringIndex(content); loc != nil {
		// `.` matches '\r', so a CRLF line keeps its carriage return
		if strings.HasSuffix(content[loc[0]:loc[1]], "\r") {
			line += "\r"
		}
		return content[:loc[0]] + line + content[loc[1]:]
	}

	newline := "\n"
	if strings.Contains(content, "\r\n") {
		newline = "\r\n"
	}

	trimmed := strings.TrimRight(content, "\r\n")
	if trimmed == "" {
		return line + newline
	}
	return trimmed + newline + line + newline
}
