//go:build unit

package entities_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
)

func TestCalculateNewVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		current  string
		kind     entities.BumpKind
		expected string
	}{
		{name: "should bump major and reset minor and patch", current: "1.2.3", kind: entities.BumpMajor, expected: "2.0.0"},
		{name: "should bump minor and reset patch", current: "1.2.3", kind: entities.BumpMinor, expected: "1.3.0"},
		{name: "should bump patch only", current: "1.2.3", kind: entities.BumpPatch, expected: "1.2.4"},
		{name: "should bump from zero", current: "0.0.0", kind: entities.BumpPatch, expected: "0.0.1"},
		{name: "should carry multi-digit components", current: "9.99.999", kind: entities.BumpPatch, expected: "9.99.1000"},
		{name: "should normalize leading zeros", current: "01.02.03", kind: entities.BumpMinor, expected: "1.3.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			current := tt.current

			// when
			result, err := entities.CalculateNewVersion(current, tt.kind)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("should reject versions that are not three integers", func(t *testing.T) {
		t.Parallel()

		for _, invalid := range []string{"abc", "1.2", "1.2.3.4", "1.2.x", "", "1..3", "1.2.3-beta", "v1.2.3", "1.2.+3", " 1.2.3", "99999999999999999999.0.0"} {
			// given
			current := invalid

			// when
			result, err := entities.CalculateNewVersion(current, entities.BumpPatch)

			// then
			require.ErrorIs(t, err, entities.ErrInvalidVersionFormat, "version %q", invalid)
			assert.Empty(t, result)
		}
	})

	t.Run("should reject a bump that would overflow the component", func(t *testing.T) {
		t.Parallel()

		maxInt := strconv.Itoa(math.MaxInt)
		for kind, current := range map[entities.BumpKind]string{
			entities.BumpMajor: maxInt + ".0.0",
			entities.BumpMinor: "1." + maxInt + ".0",
			entities.BumpPatch: "1.2." + maxInt,
		} {
			// when
			result, err := entities.CalculateNewVersion(current, kind)

			// then
			require.ErrorIs(t, err, entities.ErrInvalidVersionFormat, "kind %s", kind)
			assert.Empty(t, result)
		}
	})

	t.Run("should reset the overflowing component when a higher one is bumped", func(t *testing.T) {
		t.Parallel()

		// given
		current := "1.2." + strconv.Itoa(math.MaxInt)

		// when
		result, err := entities.CalculateNewVersion(current, entities.BumpMinor)

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.3.0", result)
	})

	t.Run("should reject an unknown bump kind", func(t *testing.T) {
		t.Parallel()

		// given
		kind := entities.BumpKind("huge")

		// when
		result, err := entities.CalculateNewVersion("1.2.3", kind)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidBumpKind)
		assert.Empty(t, result)
	})
}

func TestParseBumpKind(t *testing.T) {
	t.Parallel()

	t.Run("should accept every kind regardless of case and spacing", func(t *testing.T) {
		t.Parallel()

		// given
		inputs := map[string]entities.BumpKind{
			"major":   entities.BumpMajor,
			"Minor":   entities.BumpMinor,
			" PATCH ": entities.BumpPatch,
		}

		for raw, expected := range inputs {
			// when
			kind, err := entities.ParseBumpKind(raw)

			// then
			require.NoError(t, err)
			assert.Equal(t, expected, kind)
		}
	})

	t.Run("should return ErrInvalidBumpKind for anything else", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "prerelease"

		// when
		_, err := entities.ParseBumpKind(raw)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidBumpKind)
		assert.True(t, entities.IsConfigurationError(err))
	})

	t.Run("should list kinds in prompt order", func(t *testing.T) {
		t.Parallel()

		// when
		kinds := entities.BumpKinds()

		// then
		assert.Equal(t, []entities.BumpKind{entities.BumpMajor, entities.BumpMinor, entities.BumpPatch}, kinds)
	})
}
