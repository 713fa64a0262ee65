package safe

import (
	"net/http"
	"net/http/httptest"
	dto "safecracker/internal/api/dto/safe"
	"safecracker/internal/game"
	"safecracker/internal/repository/session_repo"
	"safecracker/internal/repository/stats_repo"
	safeServ "safecracker/internal/service/safe"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	serv := safeServ.NewSafeService(
		game.NewPool(),
		game.NewLockedSource(game.NewSource(5)),
		session_repo.NewSessionRepository(10, time.Hour),
		stats_repo.NewStatsRepository(),
		zap.NewNop(),
	)
	h := NewHandler(HandlerDeps{Serv: serv, Log: zap.NewNop()})

	r := chi.NewRouter()
	r.Route("/safe", h.Mount)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestGameFlow(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/safe/games", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[dto.GameResponse](t, rec)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, game.StateAwaitingWager, created.State)
	assert.Len(t, created.Board, 9)

	base := "/safe/games/" + created.ID

	rec = do(t, h, http.MethodPost, base+"/spin", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/wager", `{"amount": -5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/wager", `{"amount": "lots"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/wager", `{"amount": 25}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 25, decode[dto.GameResponse](t, rec).Wager)

	var last dto.SpinResponse
	for i := 0; i < 9; i++ {
		rec = do(t, h, http.MethodPost, base+"/spin", "")
		require.Equal(t, http.StatusOK, rec.Code)
		last = decode[dto.SpinResponse](t, rec)
		if last.Game.Outcome.Won {
			break
		}
	}
	require.True(t, last.Game.Outcome.Won)
	assert.Equal(t, game.StateWon, last.Game.State)
	assert.Equal(t, last.Game.Outcome.Multiplier*25, last.Game.Outcome.Payout)

	rec = do(t, h, http.MethodPost, base+"/spin", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, last.Game.Board, decode[dto.GameResponse](t, rec).Board)

	rec = do(t, h, http.MethodGet, "/safe/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[dto.StatsResponse](t, rec)
	assert.Equal(t, 1, stats.Rounds)
	assert.Equal(t, "25", stats.TotalWager)
}

func TestUnknownGameReturns404(t *testing.T) {
	h := newTestRouter(t)

	for _, path := range []string{"/safe/games/nope", "/safe/games/nope/spin"} {
		method := http.MethodGet
		if strings.HasSuffix(path, "spin") {
			method = http.MethodPost
		}
		rec := do(t, h, method, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}
