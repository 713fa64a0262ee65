package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type SafeWager struct {
	GameID string
	Amount int
}

// Box ячейка сейфа в том виде, в каком её видит клиент
type Box struct {
	Position   int
	Multiplier int // 0 пока ячейка закрыта
	Open       bool
}

type SafeOutcome struct {
	Won        bool
	Multiplier int
	Payout     int
}

// SafeGame снимок игры
type SafeGame struct {
	ID        string
	State     string
	Wager     int
	Turns     int
	Board     [9]Box
	Outcome   SafeOutcome
	CreatedAt time.Time
}

type SafeSpinResult struct {
	Position   int
	Multiplier int
	Game       SafeGame
}

// SafeStats статистика завершённых раундов
type SafeStats struct {
	Rounds          int
	TotalWager      decimal.Decimal
	TotalPayout     decimal.Decimal
	RTP             decimal.Decimal // в процентах
	WindowRTP       decimal.Decimal // RTP по последним раундам
	AverageReveals  decimal.Decimal
	WinsByMult      map[int]int
	RevealHistogram map[int]int // количество открытий -> число раундов
}

// RoundRecord итог одного раунда для статистики
type RoundRecord struct {
	Wager      int
	Payout     int
	Multiplier int
	Reveals    int
}

// SimulationReport итог прогона симуляции
type SimulationReport struct {
	Rounds     int
	Wager      int
	MaxReveals int
	Elapsed    time.Duration
	Stats      SafeStats
}
