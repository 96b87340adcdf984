package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnvFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("HOMEREPAIR_DOTENV_CHECK=loaded\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Cleanup(func() { _ = os.Unsetenv("HOMEREPAIR_DOTENV_CHECK") })

	require.NoError(t, LoadDotEnv())
	assert.Equal(t, "loaded", os.Getenv("HOMEREPAIR_DOTENV_CHECK"))
}

func TestLoadDotEnvReportsMissingFile(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, LoadDotEnv())
}
