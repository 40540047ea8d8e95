package entities

import "errors"

var (
	// ErrInvalidVersionFormat is returned when a version is not three dot-separated integers.
	ErrInvalidVersionFormat = errors.New("invalid version format")

	// ErrInvalidBumpKind is returned for a bump kind outside major, minor and patch.
	ErrInvalidBumpKind = errors.New("invalid bump kind")

	// ErrMissingVersionField is returned when a version source holds no usable version.
	ErrMissingVersionField = errors.New("missing version field")

	// ErrInvalidSettings is returned when the configuration cannot be read, parsed or validated.
	ErrInvalidSettings = errors.New("invalid settings")
)

// IsConfigurationError reports whether err is one of the failures an operator
// fixes by editing the configuration or a version string, as opposed to a
// runtime failure.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidSettings) ||
		errors.Is(err, ErrInvalidVersionFormat) ||
		errors.Is(err, ErrInvalidBumpKind) ||
		errors.Is(err, ErrMissingVersionField)
}
