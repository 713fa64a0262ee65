package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSafeConfigDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := NewSafeConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, defaultMaxSessions, cfg.MaxSessions())
	assert.Equal(t, defaultSessionTTL, cfg.SessionTTL())
	assert.Equal(t, defaultSimulationRounds, cfg.SimulationRounds())
	assert.Equal(t, defaultSimulationWager, cfg.SimulationWager())
	assert.Zero(t, cfg.Seed())
}

func TestSafeConfigFromYAML(t *testing.T) {
	path := writeFile(t, `
sessions:
  max: 50
  ttl: 5m
simulation:
  rounds: 200
  wager: 10
rng:
  seed: 99
`)
	cfg, err := NewSafeConfigFromYAML(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.MaxSessions())
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL())
	assert.Equal(t, 200, cfg.SimulationRounds())
	assert.Equal(t, 10, cfg.SimulationWager())
	assert.Equal(t, uint64(99), cfg.Seed())
}

func TestSafeConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad yaml", content: "sessions: [1"},
		{name: "bad ttl", content: "sessions:\n  ttl: soon\n"},
		{name: "zero ttl", content: "sessions:\n  ttl: 0s\n"},
		{name: "negative max", content: "sessions:\n  max: -1\n"},
		{name: "negative rounds", content: "simulation:\n  rounds: -3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSafeConfigFromYAML(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestHTTPConfig(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Address())
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout())
}

func TestHTTPConfigInvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "later")

	_, err := NewHTTPConfig()
	assert.Error(t, err)
}

func TestLogConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := NewLogConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level())
	assert.True(t, cfg.Development())
}
