package safe

import (
	"safecracker/internal/game"
	"safecracker/internal/repository"
	"safecracker/internal/service"
	"sync"
	"time"

	"go.uber.org/zap"
)

type serv struct {
	// Игровые операции над одной сессией не потокобезопасны
	mtx sync.Mutex

	pool      *game.Pool
	rng       game.Source
	repo      repository.SessionRepository
	statsRepo repository.StatsRepository
	log       *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewSafeService Создать сервис игры в сейф.
// rng должен быть общим для процесса и потокобезопасным (game.LockedSource)
func NewSafeService(
	pool *game.Pool,
	rng game.Source,
	repo repository.SessionRepository,
	statsRepo repository.StatsRepository,
	log *zap.Logger,
) service.SafeService {
	return newServ(pool, rng, repo, statsRepo, log)
}

func newServ(
	pool *game.Pool,
	rng game.Source,
	repo repository.SessionRepository,
	statsRepo repository.StatsRepository,
	log *zap.Logger,
) *serv {
	return &serv{
		pool:      pool,
		rng:       rng,
		repo:      repo,
		statsRepo: statsRepo,
		log:       log.Named("safe"),
		now:       time.Now,
		newID:     newGameID,
	}
}
