package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testProvider(t *testing.T) *ServiceProvider {
	t.Helper()
	sp := newServiceProvider(filepath.Join(t.TempDir(), "config.yaml"), false)
	sp.logger = zap.NewNop()
	return sp
}

func TestRouter(t *testing.T) {
	r := testProvider(t).Router()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/safe/games", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRouterCORS(t *testing.T) {
	r := testProvider(t).Router()

	req := httptest.NewRequest(http.MethodOptions, "/safe/games", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestProviderSharesRNG(t *testing.T) {
	sp := testProvider(t)
	assert.Same(t, sp.RNG(), sp.RNG())
	assert.Same(t, sp.Pool(), sp.Pool())
}

func TestSimulateUsesConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("simulation:\n  rounds: 120\n  wager: 3\nrng:\n  seed: 5\n"), 0o600))
	t.Setenv("LOG_LEVEL", "error")

	a := NewApp(Options{EnvPath: filepath.Join(dir, ".env"), ConfigPath: cfgPath})
	report, err := a.Simulate(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 120, report.Rounds)
	assert.Equal(t, 3, report.Wager)
	assert.Equal(t, 120, report.Stats.Rounds)
	assert.LessOrEqual(t, report.MaxReveals, 9)
}

func TestInitWithoutEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOG_LEVEL", "error")

	a := NewApp(Options{EnvPath: filepath.Join(dir, ".env"), ConfigPath: filepath.Join(dir, "config.yaml")})
	require.NotPanics(t, func() { a.init(false) })

	require.NotNil(t, a.ServiceProvider)
	assert.NotNil(t, a.ServiceProvider.logger)
}
