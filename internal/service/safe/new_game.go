package safe

import (
	"context"
	"errors"
	"fmt"
	"safecracker/internal/game"
	"safecracker/internal/model"
	"safecracker/internal/repository"
	"safecracker/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newGameID() string {
	return uuid.NewString()
}

// NewGame создаёт игру со свежим полем и ждёт ставку
func (s *serv) NewGame(ctx context.Context) (*model.SafeGame, error) {
	now := s.now()
	stored := &repository.StoredSession{
		ID:        s.newID(),
		Session:   game.New(s.pool, s.rng),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, stored); err != nil {
		if errors.Is(err, repository.ErrTooManySessions) {
			return nil, service.ErrTooManyGames
		}
		return nil, fmt.Errorf("failed to store game: %w", err)
	}

	s.log.Debug("game created",
		zap.String("game_id", stored.ID),
		zap.Ints("multipliers", chosenSlice(stored.Session.Board())),
	)

	snap := snapshot(stored)
	return &snap, nil
}

func chosenSlice(b *game.Board) []int {
	chosen := b.Chosen()
	return chosen[:]
}
