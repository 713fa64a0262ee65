// Package cli консольная игра поверх движка сейфа.
package cli

import (
	"context"
	"errors"
	"fmt"
	"safecracker/internal/game"

	"go.uber.org/zap"
)

// Play проводит одну игру: ставка, открытия по пробелу, выплата
func Play(ctx context.Context, t *Terminal, sess *game.Session, log *zap.Logger) (game.Outcome, error) {
	wager, err := t.ReadWager(ctx, func(amount int) error {
		return sess.SetWager(amount)
	})
	if err != nil {
		return game.Outcome{}, fmt.Errorf("failed to read wager: %w", err)
	}
	log.Debug("wager placed", zap.Int("wager", wager))

	t.Println()
	t.Printf("%s", sess.Board())

	for sess.State() != game.StateWon {
		if err := t.WaitForSpin(ctx); err != nil {
			return game.Outcome{}, err
		}

		rev, err := sess.PlayTurn()
		if err != nil {
			if errors.Is(err, game.ErrNoCellsAvailable) {
				log.Error("board exhausted without a win", zap.Int("turns", sess.Turns()))
			}
			return game.Outcome{}, err
		}
		log.Debug("box opened", zap.Int("position", rev.Position), zap.Int("multiplier", rev.Multiplier))

		t.Println()
		t.Printf("%s", sess.Board())
	}

	out := sess.Outcome()
	t.Printf("You won %dx your bet!\n", out.Multiplier)
	t.Printf("You won %d!\n", out.Payout)
	return out, nil
}
