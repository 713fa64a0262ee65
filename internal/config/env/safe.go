package env

import (
	"errors"
	"fmt"
	"os"
	"safecracker/internal/config"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultMaxSessions      = 1000
	defaultSessionTTL       = 30 * time.Minute
	defaultSimulationRounds = 10000
	defaultSimulationWager  = 1
)

// Структура файла config.yaml
type safeFile struct {
	Sessions struct {
		Max int    `yaml:"max"`
		TTL string `yaml:"ttl"`
	} `yaml:"sessions"`
	Simulation struct {
		Rounds int `yaml:"rounds"`
		Wager  int `yaml:"wager"`
	} `yaml:"simulation"`
	RNG struct {
		Seed uint64 `yaml:"seed"`
	} `yaml:"rng"`
}

type safeConfig struct {
	maxSessions      int
	sessionTTL       time.Duration
	simulationRounds int
	simulationWager  int
	seed             uint64
}

// NewSafeConfigFromYAML читает настройки игры из YAML.
// Если файла нет, возвращаются значения по умолчанию
func NewSafeConfigFromYAML(path string) (config.SafeConfig, error) {
	cfg := &safeConfig{
		maxSessions:      defaultMaxSessions,
		sessionTTL:       defaultSessionTTL,
		simulationRounds: defaultSimulationRounds,
		simulationWager:  defaultSimulationWager,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read safe config: %w", err)
	}

	var raw safeFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid safe config: %w", err)
	}

	if err := cfg.apply(raw); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply переносит заданные в файле значения поверх дефолтов
func (cfg *safeConfig) apply(raw safeFile) error {
	if raw.Sessions.Max < 0 {
		return fmt.Errorf("sessions.max must not be negative")
	}
	if raw.Sessions.Max > 0 {
		cfg.maxSessions = raw.Sessions.Max
	}

	if raw.Sessions.TTL != "" {
		ttl, err := time.ParseDuration(raw.Sessions.TTL)
		if err != nil {
			return fmt.Errorf("invalid sessions.ttl: %w", err)
		}
		if ttl <= 0 {
			return fmt.Errorf("sessions.ttl must be positive")
		}
		cfg.sessionTTL = ttl
	}

	if raw.Simulation.Rounds < 0 || raw.Simulation.Wager < 0 {
		return fmt.Errorf("simulation settings must not be negative")
	}
	if raw.Simulation.Rounds > 0 {
		cfg.simulationRounds = raw.Simulation.Rounds
	}
	if raw.Simulation.Wager > 0 {
		cfg.simulationWager = raw.Simulation.Wager
	}

	cfg.seed = raw.RNG.Seed
	return nil
}

func (cfg *safeConfig) MaxSessions() int {
	return cfg.maxSessions
}

func (cfg *safeConfig) SessionTTL() time.Duration {
	return cfg.sessionTTL
}

func (cfg *safeConfig) SimulationRounds() int {
	return cfg.simulationRounds
}

func (cfg *safeConfig) SimulationWager() int {
	return cfg.simulationWager
}

func (cfg *safeConfig) Seed() uint64 {
	return cfg.seed
}
