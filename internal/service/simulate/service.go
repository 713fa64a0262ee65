package simulate

import (
	"context"
	"errors"
	"fmt"
	"safecracker/internal/game"
	"safecracker/internal/model"
	"safecracker/internal/repository"
	"safecracker/internal/service"
	"time"

	"go.uber.org/zap"
)

const (
	// Больше 9 открытий на поле 3x3 быть не может
	maxRevealsPerRound = 9
	// Как часто проверять отмену контекста
	ctxCheckEvery = 1000
)

var ErrRoundDidNotFinish = errors.New("round did not finish within board size")

type serv struct {
	pool      *game.Pool
	rng       game.Source
	statsRepo repository.StatsRepository
	log       *zap.Logger
}

// NewSimulationService прогон полных раундов для оценки RTP
func NewSimulationService(
	pool *game.Pool,
	rng game.Source,
	statsRepo repository.StatsRepository,
	log *zap.Logger,
) service.SimulationService {
	return &serv{
		pool:      pool,
		rng:       rng,
		statsRepo: statsRepo,
		log:       log.Named("simulate"),
	}
}

// Run играет rounds раундов со ставкой wager и возвращает сводку
func (s *serv) Run(ctx context.Context, rounds, wager int) (*model.SimulationReport, error) {
	if rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", rounds)
	}

	start := time.Now()
	s.statsRepo.Reset()

	progressStep := rounds / 10
	if progressStep == 0 {
		progressStep = rounds
	}

	maxReveals := 0
	for i := 1; i <= rounds; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rec, err := s.playRound(wager)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", i, err)
		}
		s.statsRepo.Record(rec)
		if rec.Reveals > maxReveals {
			maxReveals = rec.Reveals
		}

		if i%progressStep == 0 {
			s.log.Debug("simulation progress", zap.Int("rounds", i), zap.Int("total", rounds))
		}
	}

	report := &model.SimulationReport{
		Rounds:     rounds,
		Wager:      wager,
		MaxReveals: maxReveals,
		Elapsed:    time.Since(start),
		Stats:      s.statsRepo.Snapshot(),
	}

	s.log.Info("simulation finished",
		zap.Int("rounds", rounds),
		zap.String("rtp", report.Stats.RTP.StringFixed(2)),
		zap.Int("max_reveals", maxReveals),
		zap.Duration("elapsed", report.Elapsed),
	)
	return report, nil
}

func (s *serv) playRound(wager int) (model.RoundRecord, error) {
	sess := game.New(s.pool, s.rng)
	if err := sess.SetWager(wager); err != nil {
		return model.RoundRecord{}, err
	}

	for sess.State() != game.StateWon {
		if sess.Turns() >= maxRevealsPerRound {
			return model.RoundRecord{}, ErrRoundDidNotFinish
		}
		if _, err := sess.PlayTurn(); err != nil {
			return model.RoundRecord{}, err
		}
	}

	out := sess.Outcome()
	return model.RoundRecord{
		Wager:      wager,
		Payout:     out.Payout,
		Multiplier: out.Multiplier,
		Reveals:    sess.Turns(),
	}, nil
}
