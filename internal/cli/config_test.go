package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dleutenegger/picsum-go/pkg/picsum"
)

func TestLoadConfig(t *testing.T) {
	t.Cleanup(func() { config = nil })

	t.Run("missing file", func(t *testing.T) {
		err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(file, []byte("{not yaml"), 0o644))
		assert.Error(t, LoadConfig(file))
	})

	t.Run("valid config", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(file, []byte("version: \"1\"\nbase_url: http://localhost:8080\n"), 0o644))
		require.NoError(t, LoadConfig(file))
		assert.Equal(t, "http://localhost:8080", config.BaseURL)
	})
}

func TestBaseURLPrecedence(t *testing.T) {
	t.Cleanup(func() { config = nil })

	config = nil
	t.Setenv(baseURLEnvVar, "")
	assert.Equal(t, picsum.DefaultBaseURL, BaseURL())

	config = &Config{BaseURL: "http://from-file"}
	assert.Equal(t, "http://from-file", BaseURL())

	t.Setenv(baseURLEnvVar, "http://from-env")
	assert.Equal(t, "http://from-env", BaseURL())
}
