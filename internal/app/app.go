package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"safecracker/internal/cli"
	"safecracker/internal/config"
	"safecracker/internal/game"
	"safecracker/internal/model"

	"go.uber.org/zap"
)

type Options struct {
	EnvPath    string
	ConfigPath string
}

type App struct {
	opts            Options
	ServiceProvider *ServiceProvider
}

func NewApp(opts Options) *App {
	return &App{opts: opts}
}

func (s *App) init(consoleLog bool) {
	// Логгер настраивается из env, поэтому ошибку .env пишем после сборки провайдера
	envErr := config.Load(s.opts.EnvPath)
	s.ServiceProvider = newServiceProvider(s.opts.ConfigPath, consoleLog)
	if envErr != nil {
		s.ServiceProvider.Logger().Info("env file not loaded",
			zap.String("path", s.opts.EnvPath),
			zap.Error(envErr),
		)
	}
}

// Play консольная игра на stdin/stdout
func (s *App) Play(ctx context.Context) error {
	s.init(true)
	sp := s.ServiceProvider
	defer func() { _ = sp.Logger().Sync() }()

	sess := game.New(sp.Pool(), sp.RNG())
	_, err := cli.Play(ctx, cli.NewStdTerminal(), sess, sp.Logger())
	if errors.Is(err, cli.ErrInterrupted) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Serve HTTP сервер до отмены ctx
func (s *App) Serve(ctx context.Context) error {
	s.init(false)
	sp := s.ServiceProvider
	defer func() { _ = sp.Logger().Sync() }()

	srv := &http.Server{
		Addr:    sp.HTTPCfg().Address(),
		Handler: sp.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		sp.Logger().Info("starting server", zap.String("address", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	sp.Logger().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), sp.HTTPCfg().ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// Simulate прогоняет rounds раундов. 0 - значения из конфига
func (s *App) Simulate(ctx context.Context, rounds, wager int) (*model.SimulationReport, error) {
	s.init(false)
	sp := s.ServiceProvider
	defer func() { _ = sp.Logger().Sync() }()

	if rounds == 0 {
		rounds = sp.SafeCfg().SimulationRounds()
	}
	if wager == 0 {
		wager = sp.SafeCfg().SimulationWager()
	}

	return sp.SimulationService().Run(ctx, rounds, wager)
}
