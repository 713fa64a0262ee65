package env

import (
	"fmt"
	"net"
	"safecracker/internal/config"
	"time"

	"github.com/caarlos0/env/v11"
)

type httpConfig struct {
	Host     string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port     string        `env:"HTTP_PORT" envDefault:"8080"`
	Shutdown time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse http config: %w", err)
	}
	if len(cfg.Port) == 0 {
		return nil, fmt.Errorf("http port not found")
	}
	if cfg.Shutdown <= 0 {
		return nil, fmt.Errorf("invalid http shutdown timeout: %s", cfg.Shutdown)
	}

	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.Host, cfg.Port)
}

func (cfg *httpConfig) ShutdownTimeout() time.Duration {
	return cfg.Shutdown
}
