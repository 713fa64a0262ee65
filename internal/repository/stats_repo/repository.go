package stats_repo

import (
	"safecracker/internal/model"
	repoModel "safecracker/internal/repository/stats_repo/model"
	"sync"

	"github.com/shopspring/decimal"
)

const (
	// defaultWindowSize Размер окна последних раундов для RTP
	defaultWindowSize = 500
)

var hundred = decimal.NewFromInt(100)

// StatsRepo Реализация репозитория для хранения статистики раундов
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.SafeState
}

// NewStatsRepository Конструктор репозитория с пустым состоянием
func NewStatsRepository() *StatsRepo {
	r := &StatsRepo{}
	r.state = initialState(defaultWindowSize)
	return r
}

func initialState(windowSize int) repoModel.SafeState {
	return repoModel.SafeState{
		TotalWager:      decimal.Zero,
		TotalPayout:     decimal.Zero,
		CurrentRTP:      decimal.Zero,
		WinsByMult:      make(map[int]int),
		RevealHistogram: make(map[int]int),
		RoundWindow:     make([]repoModel.RoundResult, 0, windowSize),
		WindowRTP:       decimal.Zero,
		WindowSize:      windowSize,
	}
}

// Record Обновление статистики после завершённого раунда
func (r *StatsRepo) Record(round model.RoundRecord) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	wager := decimal.NewFromInt(int64(round.Wager))
	payout := decimal.NewFromInt(int64(round.Payout))

	r.state.TotalRounds++
	r.state.TotalWager = r.state.TotalWager.Add(wager)
	r.state.TotalPayout = r.state.TotalPayout.Add(payout)
	r.state.TotalReveals += round.Reveals
	r.state.CurrentRTP = rtp(r.state.TotalPayout, r.state.TotalWager)

	r.state.WinsByMult[round.Multiplier]++
	r.state.RevealHistogram[round.Reveals]++

	// Добавляем раунд в окно
	r.state.RoundWindow = append(r.state.RoundWindow, repoModel.RoundResult{
		Wager:  wager,
		Payout: payout,
	})

	// Поддерживаем размер окна
	if len(r.state.RoundWindow) > r.state.WindowSize {
		r.state.RoundWindow = r.state.RoundWindow[1:]
	}

	// Пересчитываем RTP в окне
	windowWager, windowPayout := decimal.Zero, decimal.Zero
	for _, rr := range r.state.RoundWindow {
		windowWager = windowWager.Add(rr.Wager)
		windowPayout = windowPayout.Add(rr.Payout)
	}
	r.state.WindowRTP = rtp(windowPayout, windowWager)
}

// Snapshot Копия статистики для отдачи наружу
func (r *StatsRepo) Snapshot() model.SafeStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	wins := make(map[int]int, len(r.state.WinsByMult))
	for k, v := range r.state.WinsByMult {
		wins[k] = v
	}
	hist := make(map[int]int, len(r.state.RevealHistogram))
	for k, v := range r.state.RevealHistogram {
		hist[k] = v
	}

	avg := decimal.Zero
	if r.state.TotalRounds > 0 {
		avg = decimal.NewFromInt(int64(r.state.TotalReveals)).
			DivRound(decimal.NewFromInt(int64(r.state.TotalRounds)), 4)
	}

	return model.SafeStats{
		Rounds:          r.state.TotalRounds,
		TotalWager:      r.state.TotalWager,
		TotalPayout:     r.state.TotalPayout,
		RTP:             r.state.CurrentRTP,
		WindowRTP:       r.state.WindowRTP,
		AverageReveals:  avg,
		WinsByMult:      wins,
		RevealHistogram: hist,
	}
}

// Reset Сброс статистики (перед симуляцией)
func (r *StatsRepo) Reset() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.state = initialState(r.state.WindowSize)
}

func rtp(payout, wager decimal.Decimal) decimal.Decimal {
	if wager.IsZero() {
		return decimal.Zero
	}
	return payout.Mul(hundred).DivRound(wager, 4)
}
