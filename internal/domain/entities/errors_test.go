//go:build unit

package entities_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
)

func TestIsConfigurationError(t *testing.T) {
	t.Parallel()

	t.Run("should classify wrapped sentinels as configuration errors", func(t *testing.T) {
		t.Parallel()

		for _, sentinel := range []error{
			entities.ErrInvalidSettings,
			entities.ErrInvalidVersionFormat,
			entities.ErrInvalidBumpKind,
			entities.ErrMissingVersionField,
		} {
			// given
			err := fmt.Errorf("project main: %w", sentinel)

			// when
			ok := entities.IsConfigurationError(err)

			// then
			assert.True(t, ok, sentinel.Error())
		}
	})

	t.Run("should not classify runtime failures", func(t *testing.T) {
		t.Parallel()

		// given
		err := fmt.Errorf("error pushing to git: %w", errors.New("connection refused"))

		// when
		ok := entities.IsConfigurationError(err)

		// then
		assert.False(t, ok)
		assert.False(t, entities.IsConfigurationError(nil))
	})
}
