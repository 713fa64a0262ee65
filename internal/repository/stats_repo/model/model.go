package model

import "github.com/shopspring/decimal"

// Состояние статистики сейфа
type SafeState struct {
	TotalRounds  int             // Сколько всего раундов сыграно
	TotalWager   decimal.Decimal // Сумма всех ставок
	TotalPayout  decimal.Decimal // Сумма всех выплат
	TotalReveals int             // Сколько всего ячеек открыто

	CurrentRTP decimal.Decimal // (TotalPayout/TotalWager)*100

	WinsByMult      map[int]int // Множитель -> сколько раз выиграл
	RevealHistogram map[int]int // Открытий до выигрыша -> сколько раундов

	RoundWindow []RoundResult   // Окно последних раундов
	WindowRTP   decimal.Decimal // RTP в окне
	WindowSize  int             // Размер окна
}

// Результат раунда для окна
type RoundResult struct {
	Wager  decimal.Decimal
	Payout decimal.Decimal
}
