package service

import (
	"context"
	"errors"
	"safecracker/internal/model"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrTooManyGames = errors.New("too many active games, try again later")
)

type SafeService interface {
	NewGame(ctx context.Context) (*model.SafeGame, error)
	PlaceWager(ctx context.Context, req model.SafeWager) (*model.SafeGame, error)
	Spin(ctx context.Context, gameID string) (*model.SafeSpinResult, error)
	Game(ctx context.Context, gameID string) (*model.SafeGame, error)
	Stats(ctx context.Context) (*model.SafeStats, error)
}

type SimulationService interface {
	Run(ctx context.Context, rounds, wager int) (*model.SimulationReport, error)
}
