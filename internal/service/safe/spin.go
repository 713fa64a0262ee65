package safe

import (
	"context"
	"fmt"
	"safecracker/internal/game"
	"safecracker/internal/model"

	"go.uber.org/zap"
)

// Spin открывает одну ячейку. Если группа собрана, раунд уходит в статистику
func (s *serv) Spin(ctx context.Context, gameID string) (*model.SafeSpinResult, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored, err := s.lookup(ctx, gameID)
	if err != nil {
		return nil, err
	}

	sess := stored.Session
	rev, err := sess.PlayTurn()
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", gameID, err)
	}
	if err := s.repo.Touch(ctx, gameID, s.now()); err != nil {
		return nil, fmt.Errorf("failed to touch game: %w", err)
	}

	s.log.Debug("box opened",
		zap.String("game_id", gameID),
		zap.Int("position", rev.Position),
		zap.Int("multiplier", rev.Multiplier),
	)

	if out := sess.Outcome(); out.Status == game.StatusWon {
		s.statsRepo.Record(model.RoundRecord{
			Wager:      sess.Wager(),
			Payout:     out.Payout,
			Multiplier: out.Multiplier,
			Reveals:    sess.Turns(),
		})
		s.log.Info("game won",
			zap.String("game_id", gameID),
			zap.Int("multiplier", out.Multiplier),
			zap.Int("wager", sess.Wager()),
			zap.Int("payout", out.Payout),
			zap.Int("reveals", sess.Turns()),
		)
	}

	return &model.SafeSpinResult{
		Position:   rev.Position,
		Multiplier: rev.Multiplier,
		Game:       snapshot(stored),
	}, nil
}
