package safe

import (
	"context"
	"fmt"
	"safecracker/internal/model"

	"go.uber.org/zap"
)

// PlaceWager принимает ставку для игры
func (s *serv) PlaceWager(ctx context.Context, req model.SafeWager) (*model.SafeGame, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored, err := s.lookup(ctx, req.GameID)
	if err != nil {
		return nil, err
	}

	if err := stored.Session.SetWager(req.Amount); err != nil {
		return nil, fmt.Errorf("game %s: %w", req.GameID, err)
	}
	if err := s.repo.Touch(ctx, req.GameID, s.now()); err != nil {
		return nil, fmt.Errorf("failed to touch game: %w", err)
	}

	s.log.Debug("wager placed", zap.String("game_id", req.GameID), zap.Int("wager", req.Amount))

	snap := snapshot(stored)
	return &snap, nil
}
