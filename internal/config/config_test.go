package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SAFE_TEST_LOAD=yes\n"), 0o600))
	t.Setenv("SAFE_TEST_LOAD", "")
	require.NoError(t, os.Unsetenv("SAFE_TEST_LOAD"))

	require.NoError(t, Load(path))
	assert.Equal(t, "yes", os.Getenv("SAFE_TEST_LOAD"))
}

func TestLoadMissingFile(t *testing.T) {
	assert.Error(t, Load(filepath.Join(t.TempDir(), "missing.env")))
}
