package safe

import (
	"context"
	"errors"
	"fmt"
	"safecracker/internal/game"
	"safecracker/internal/model"
	"safecracker/internal/repository"
	"safecracker/internal/service"
)

// Game снимок игры по ID
func (s *serv) Game(ctx context.Context, gameID string) (*model.SafeGame, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored, err := s.lookup(ctx, gameID)
	if err != nil {
		return nil, err
	}

	snap := snapshot(stored)
	return &snap, nil
}

// Stats статистика завершённых раундов
func (s *serv) Stats(_ context.Context) (*model.SafeStats, error) {
	stats := s.statsRepo.Snapshot()
	return &stats, nil
}

func (s *serv) lookup(ctx context.Context, gameID string) (*repository.StoredSession, error) {
	stored, err := s.repo.Get(ctx, gameID, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, service.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return stored, nil
}

// snapshot переводит состояние сессии в модель для клиента
func snapshot(stored *repository.StoredSession) model.SafeGame {
	sess := stored.Session

	var board [9]model.Box
	for i, v := range sess.Board().Render() {
		board[i] = model.Box{
			Position:   v.Position,
			Multiplier: v.Multiplier,
			Open:       v.Revealed,
		}
	}

	out := sess.Outcome()
	return model.SafeGame{
		ID:        stored.ID,
		State:     sess.State(),
		Wager:     sess.Wager(),
		Turns:     sess.Turns(),
		Board:     board,
		CreatedAt: stored.CreatedAt,
		Outcome: model.SafeOutcome{
			Won:        out.Status == game.StatusWon,
			Multiplier: out.Multiplier,
			Payout:     out.Payout,
		},
	}
}
