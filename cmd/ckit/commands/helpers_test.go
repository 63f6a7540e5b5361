package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	id, ok := parseID("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = parseID("newsletter")
	assert.False(t, ok)

	_, ok = parseID("-3")
	assert.False(t, ok)

	_, ok = parseID("0")
	assert.False(t, ok)
}

func TestLoadCredentials(t *testing.T) {
	t.Parallel()
	t.Run("reads api_key and api_secret", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "credentials.yml")
		require.NoError(t, os.WriteFile(path, []byte("api_key: key-123\napi_secret: secret-456\n"), 0o600))

		creds, err := loadCredentials(path)
		require.NoError(t, err)
		assert.Equal(t, "key-123", creds.APIKey)
		assert.Equal(t, "secret-456", creds.APISecret)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := loadCredentials(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
	})

	t.Run("directory is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := loadCredentials(t.TempDir())
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "credentials.yml")
		require.NoError(t, os.WriteFile(path, []byte("api_key: [unclosed"), 0o600))

		_, err := loadCredentials(path)
		require.Error(t, err)
	})
}
