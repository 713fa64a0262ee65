package logger

import (
	"fmt"
	"safecracker/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New собирает zap-логгер по конфигу: JSON для продакшена, консольный для разработки
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level())
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level(), err)
	}

	var zcfg zap.Config
	if cfg.Development() {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableStacktrace = true

	return zcfg.Build()
}

// NewConsole логгер для терминальной игры: только stderr и не ниже warn,
// чтобы не ломать отрисовку поля
func NewConsole(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level())
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level(), err)
	}
	if level < zapcore.WarnLevel {
		level = zapcore.WarnLevel
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableStacktrace = true
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
