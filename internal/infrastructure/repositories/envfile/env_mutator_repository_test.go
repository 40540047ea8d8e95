//go:build unit

package envfile_test

import (
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/autoversioner/internal/domain/entities"
	"github.com/rios0rios0/autoversioner/internal/infrastructure/repositories/envfile"
	"github.com/rios0rios0/autoversioner/test/infrastructure/repositorydoubles"
)

func TestSetKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		key      string
		expected string
	}{
		{
			name:     "should replace an existing key",
			content:  "A=1\nB=2\n",
			key:      "B",
			expected: "A=1\nB=9\n",
		},
		{
			name:     "should append a missing key",
			content:  "A=1\nB=2\n",
			key:      "C",
			expected: "A=1\nB=2\nC=9\n",
		},
		{
			name:     "should append after content without trailing newline",
			content:  "A=1",
			key:      "C",
			expected: "A=1\nC=9\n",
		},
		{
			name:     "should write a single line into an empty file",
			content:  "",
			key:      "VERSION",
			expected: "VERSION=9\n",
		},
		{
			name:     "should replace only the first occurrence",
			content:  "V=1\nV=2\n",
			key:      "V",
			expected: "V=9\nV=2\n",
		},
		{
			name:     "should not match keys sharing a prefix",
			content:  "APP_VERSION=1\n",
			key:      "VERSION",
			expected: "APP_VERSION=1\nVERSION=9\n",
		},
		{
			name:     "should treat regex characters in the key literally",
			content:  "A.B=1\nAxB=2\n",
			key:      "AxB",
			expected: "A.B=1\nAxB=9\n",
		},
		{
			name:     "should keep CRLF line endings",
			content:  "A=1\r\nB=2\r\n",
			key:      "B",
			expected: "A=1\r\nB=9\r\n",
		},
		{
			name:     "should append with CRLF line endings",
			content:  "A=1\r\n",
			key:      "B",
			expected: "A=1\r\nB=9\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result := envfile.SetKey(tt.content, tt.key, "9")

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMutatorRepositoryApply(t *testing.T) {
	t.Parallel()

	t.Run("should update the key of a file below the base directory", func(t *testing.T) {
		t.Parallel()

		// given
		files := repositorydoubles.NewStubFileRepository(map[string]string{"api/.env": "PORT=80\nVERSION=1.0.0\n"})
		log, _ := logtest.NewNullLogger()
		mutator := envfile.NewMutatorRepository(files, log)
		target := entities.FileTarget{Path: ".env", Kind: entities.FileKindEnv, Key: "VERSION"}

		// when
		ok := mutator.Apply(target, "1.1.0", "api")

		// then
		assert.True(t, ok)
		assert.Equal(t, "PORT=80\nVERSION=1.1.0\n", files.Files["api/.env"])
	})

	t.Run("should succeed without touching the file when no key is set", func(t *testing.T) {
		t.Parallel()

		// given
		files := repositorydoubles.NewStubFileRepository(map[string]string{".env": "A=1\n"})
		log, _ := logtest.NewNullLogger()
		mutator := envfile.NewMutatorRepository(files, log)
		target := entities.FileTarget{Path: ".env", Kind: entities.FileKindEnv}

		// when
		ok := mutator.Apply(target, "1.1.0", "")

		// then
		assert.True(t, ok)
		assert.Empty(t, files.Writes)
	})

	t.Run("should report failure when the file is missing", func(t *testing.T) {
		t.Parallel()

		// given
		files := repositorydoubles.NewStubFileRepository(nil)
		log, _ := logtest.NewNullLogger()
		mutator := envfile.NewMutatorRepository(files, log)
		target := entities.FileTarget{Path: ".env", Kind: entities.FileKindEnv, Key: "VERSION"}

		// when
		ok := mutator.Apply(target, "1.1.0", "")

		// then
		assert.False(t, ok)
		assert.Empty(t, files.Writes)
	})
}
