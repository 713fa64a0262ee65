package safe

import (
	"errors"
	"net/http"
	dto "safecracker/internal/api/dto/safe"
	"safecracker/internal/converter"
	"safecracker/internal/game"
	"safecracker/internal/service"
	"safecracker/pkg/req"
	"safecracker/pkg/resp"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.SafeService
	Log  *zap.Logger
}

type Handler struct {
	serv service.SafeService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Mount вешает эндпоинты сейфа на роутер
func (h *Handler) Mount(r chi.Router) {
	r.Post("/games", h.NewGame)
	r.Get("/games/{id}", h.Game)
	r.Post("/games/{id}/wager", h.Wager)
	r.Post("/games/{id}/spin", h.Spin)
	r.Get("/stats", h.Stats)
}

// NewGame создаёт игру, ставка ещё не сделана
func (h *Handler) NewGame(w http.ResponseWriter, r *http.Request) {
	g, err := h.serv.NewGame(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToGameResponse(*g))
}

func (h *Handler) Game(w http.ResponseWriter, r *http.Request) {
	g, err := h.serv.Game(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponse(*g))
}

// Wager принимает ставку {"amount": N}
func (h *Handler) Wager(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.WagerRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	g, err := h.serv.PlaceWager(r.Context(), converter.ToSafeWager(chi.URLParam(r, "id"), payload))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponse(*g))
}

// Spin открывает следующую ячейку
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Spin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stats))
}

// writeError переводит ошибки игры в HTTP статусы
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		resp.WriteError(w, http.StatusNotFound, service.ErrGameNotFound.Error())
	case errors.Is(err, game.ErrInvalidWager):
		resp.WriteError(w, http.StatusBadRequest, game.ErrInvalidWager.Error())
	case errors.Is(err, game.ErrWagerLocked),
		errors.Is(err, game.ErrWagerRequired),
		errors.Is(err, game.ErrGameAlreadyWon),
		errors.Is(err, game.ErrNoCellsAvailable):
		resp.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrTooManyGames):
		resp.WriteError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.log.Error("safe request failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
