package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	"github.com/rios0rios0/autoversioner/internal/domain/repositories"
)

const indent = "  "

// pathSpecialChars are the characters gjson and sjson interpret inside a path.
const pathSpecialChars = `\.*?|#@!=<>%:`

var errNotAnObject = errors.New("document is not a JSON object")

// MutatorRepository rewrites one top-level field of a JSON document, keeping
// every other key and the key order untouched.
type MutatorRepository struct {
	files repositories.FileRepository
	log   logger.FieldLogger
}

var (
	_ repositories.MutatorRepository = (*MutatorRepository)(nil)
	_ repositories.VersionReader     = (*MutatorRepository)(nil)
)

// NewMutatorRepository creates a JSON mutator writing through files.
func NewMutatorRepository(files repositories.FileRepository, log logger.FieldLogger) *MutatorRepository {
	return &MutatorRepository{files: files, log: log}
}

func (it *MutatorRepository) Kind() entities.FileKind { return entities.FileKindJSON }

func (it *MutatorRepository) Apply(target entities.FileTarget, newVersion, baseDir string) bool {
	path := target.ResolvePath(baseDir)
	field := target.VersionField()
	it.log.Infof("Updating JSON file %s, field %s to %s", path, field, newVersion)

	data, err := it.files.ReadFile(path)
	if err != nil {
		it.log.Errorf("Failed to update version in %s: %v", path, err)
		return false
	}

	updated, err := SetField(data, field, newVersion)
	if err != nil {
		it.log.Errorf("Failed to update version in %s: %v", path, err)
		return false
	}

	if writeErr := it.files.WriteFile(path, updated); writeErr != nil {
		it.log.Errorf("Failed to update version in %s: %v", path, writeErr)
		return false
	}
	return true
}

// ReadVersion returns the string stored under field. Every failure wraps
// entities.ErrMissingVersionField.
func (it *MutatorRepository) ReadVersion(path, field string) (string, error) {
	it.log.Infof("Reading version from: %s", path)

	data, err := it.files.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", entities.ErrMissingVersionField, err)
	}

	root, err := parseObject(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", entities.ErrMissingVersionField, path, err)
	}

	value := root.Get(escapePath(field))
	if !value.Exists() || value.Type != gjson.String || value.String() == "" {
		return "", fmt.Errorf("%w: %s has no string %q field", entities.ErrMissingVersionField, path, field)
	}

	it.log.Infof("Current version found: %s", value.String())
	return value.String(), nil
}

// SetField assigns value to the top-level key field and re-serializes the
// document with two-space indentation.
func SetField(data []byte, field, value string) ([]byte, error) {
	if _, err := parseObject(data); err != nil {
		return nil, err
	}

	updated, err := sjson.SetBytes(data, escapePath(field), value)
	if err != nil {
		return nil, fmt.Errorf("failed to set %q: %w", field, err)
	}

	var out bytes.Buffer
	if indentErr := json.Indent(&out, bytes.TrimSpace(updated), "", indent); indentErr != nil {
		return nil, fmt.Errorf("failed to format document: %w", indentErr)
	}
	return out.Bytes(), nil
}

func parseObject(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, errors.New("invalid JSON document")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return gjson.Result{}, errNotAnObject
	}
	return root, nil
}

// escapePath makes field a single literal key for gjson and sjson.
func escapePath(field string) string {
	var b strings.Builder
	for _, r := range field {
		if strings.ContainsRune(pathSpecialChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
