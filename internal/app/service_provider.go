package app

import (
	"safecracker/internal/api/safe"
	"safecracker/internal/config"
	"safecracker/internal/config/env"
	"safecracker/internal/game"
	"safecracker/internal/logger"
	"safecracker/internal/repository"
	"safecracker/internal/repository/session_repo"
	"safecracker/internal/repository/stats_repo"
	"safecracker/internal/service"
	safeServ "safecracker/internal/service/safe"
	"safecracker/internal/service/simulate"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	configPath string
	// Терминальная игра пишет логи только в stderr
	consoleLog bool

	// Configs
	safeCfg config.SafeConfig
	httpCfg config.HTTPConfig
	logCfg  config.LogConfig

	logger *zap.Logger

	// Game bits
	pool *game.Pool
	rng  game.Source

	// Repositories
	sessionRepo repository.SessionRepository
	statsRepo   repository.StatsRepository

	// Services
	safeServ     service.SafeService
	simulateServ service.SimulationService

	// HTTP
	safeHand *safe.Handler
	router   chi.Router
}

func newServiceProvider(configPath string, consoleLog bool) *ServiceProvider {
	return &ServiceProvider{configPath: configPath, consoleLog: consoleLog}
}

func (sp *ServiceProvider) SafeCfg() config.SafeConfig {
	if sp.safeCfg == nil {
		cfg, err := env.NewSafeConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get safe config: " + err.Error())
		}
		sp.safeCfg = cfg
	}
	return sp.safeCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		build := logger.New
		if sp.consoleLog {
			build = logger.NewConsole
		}
		l, err := build(sp.LogCfg())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) Pool() *game.Pool {
	if sp.pool == nil {
		sp.pool = game.NewPool()
	}
	return sp.pool
}

// RNG единственный генератор на процесс
func (sp *ServiceProvider) RNG() game.Source {
	if sp.rng == nil {
		sp.rng = game.NewLockedSource(game.NewSource(sp.SafeCfg().Seed()))
	}
	return sp.rng
}

func (sp *ServiceProvider) SessionRepository() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.SafeCfg().MaxSessions(), sp.SafeCfg().SessionTTL())
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) SafeService() service.SafeService {
	if sp.safeServ == nil {
		sp.safeServ = safeServ.NewSafeService(sp.Pool(), sp.RNG(), sp.SessionRepository(), sp.StatsRepository(), sp.Logger())
	}
	return sp.safeServ
}

func (sp *ServiceProvider) SimulationService() service.SimulationService {
	if sp.simulateServ == nil {
		sp.simulateServ = simulate.NewSimulationService(sp.Pool(), sp.RNG(), sp.StatsRepository(), sp.Logger())
	}
	return sp.simulateServ
}

func (sp *ServiceProvider) SafeHandler() *safe.Handler {
	if sp.safeHand == nil {
		sp.safeHand = safe.NewHandler(safe.HandlerDeps{
			Serv: sp.SafeService(),
			Log:  sp.Logger(),
		})
	}
	return sp.safeHand
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(requestLogger(sp.Logger()))
		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", healthz)

		// Safe endpoints
		r.Route("/safe", sp.SafeHandler().Mount)

		sp.router = r
	}

	return sp.router
}
