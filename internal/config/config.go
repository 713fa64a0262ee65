package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Load подгружает переменные окружения из .env файла
func Load(path string) error {
	return godotenv.Load(path)
}

type SafeConfig interface {
	// Максимум одновременно живых игр на сервере
	MaxSessions() int
	// Через сколько простоя игра удаляется из памяти
	SessionTTL() time.Duration
	SimulationRounds() int
	SimulationWager() int
	// 0 - посев от времени
	Seed() uint64
}

type HTTPConfig interface {
	Address() string
	ShutdownTimeout() time.Duration
}

type LogConfig interface {
	Level() string
	Development() bool
}
