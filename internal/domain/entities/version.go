package entities

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BumpKind selects which semantic-version component increments.
type BumpKind string

const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
)

const versionParts = 3

// BumpKinds returns every supported bump kind, in prompt order.
func BumpKinds() []BumpKind {
	return []BumpKind{BumpMajor, BumpMinor, BumpPatch}
}

// ParseBumpKind converts user input into a BumpKind.
func ParseBumpKind(raw string) (BumpKind, error) {
	kind := BumpKind(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q (expected major, minor or patch)", ErrInvalidBumpKind, raw)
	}
	return kind, nil
}

// IsValid reports whether the kind is major, minor or patch.
func (k BumpKind) IsValid() bool {
	switch k {
	case BumpMajor, BumpMinor, BumpPatch:
		return true
	default:
		return false
	}
}

func (k BumpKind) String() string { return string(k) }

// CalculateNewVersion returns the version that follows current for the given bump kind.
// Lower components are reset to zero.
func CalculateNewVersion(current string, kind BumpKind) (string, error) {
	major, minor, patch, err := parseVersion(current)
	if err != nil {
		return "", err
	}

	var bumped int
	switch kind {
	case BumpMajor:
		bumped = major
	case BumpMinor:
		bumped = minor
	case BumpPatch:
		bumped = patch
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBumpKind, string(kind))
	}
	if bumped == math.MaxInt {
		return "", fmt.Errorf("%w: %q cannot be incremented", ErrInvalidVersionFormat, current)
	}

	switch kind {
	case BumpMajor:
		return formatVersion(major+1, 0, 0), nil
	case BumpMinor:
		return formatVersion(major, minor+1, 0), nil
	default:
		return formatVersion(major, minor, patch+1), nil
	}
}

// parseVersion splits a "major.minor.patch" string into its integer components.
func parseVersion(version string) (int, int, int, error) {
	parts := strings.Split(version, ".")
	if len(parts) != versionParts {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidVersionFormat, version)
	}

	numbers := make([]int, versionParts)
	for i, part := range parts {
		if part == "" || strings.ContainsAny(part, "+- \t") {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidVersionFormat, version)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidVersionFormat, version)
		}
		numbers[i] = n
	}

	return numbers[0], numbers[1], numbers[2], nil
}

func formatVersion(major, minor, patch int) string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
