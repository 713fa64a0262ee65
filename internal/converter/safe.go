package converter

import (
	"safecracker/internal/api/dto/safe"
	"safecracker/internal/model"
	"strconv"
	"time"
)

func ToSafeWager(gameID string, req safe.WagerRequest) model.SafeWager {
	return model.SafeWager{
		GameID: gameID,
		Amount: req.Amount,
	}
}

func ToGameResponse(g model.SafeGame) safe.GameResponse {
	board := make([]safe.Box, len(g.Board))
	for i, b := range g.Board {
		board[i] = safe.Box{
			Position:   b.Position,
			Multiplier: b.Multiplier,
			Open:       b.Open,
		}
	}

	return safe.GameResponse{
		ID:    g.ID,
		State: g.State,
		Wager: g.Wager,
		Turns: g.Turns,
		Board: board,
		Outcome: safe.Outcome{
			Won:        g.Outcome.Won,
			Multiplier: g.Outcome.Multiplier,
			Payout:     g.Outcome.Payout,
		},
		CreatedAt: g.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToSpinResponse(res model.SafeSpinResult) safe.SpinResponse {
	return safe.SpinResponse{
		Position:   res.Position,
		Multiplier: res.Multiplier,
		Game:       ToGameResponse(res.Game),
	}
}

func ToStatsResponse(s model.SafeStats) safe.StatsResponse {
	return safe.StatsResponse{
		Rounds:          s.Rounds,
		TotalWager:      s.TotalWager.String(),
		TotalPayout:     s.TotalPayout.String(),
		RTP:             s.RTP.StringFixed(2),
		WindowRTP:       s.WindowRTP.StringFixed(2),
		AverageReveals:  s.AverageReveals.StringFixed(2),
		WinsByMult:      intKeys(s.WinsByMult),
		RevealHistogram: intKeys(s.RevealHistogram),
	}
}

// JSON не умеет int ключи у map в явном виде, переводим в строки
func intKeys(m map[int]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[strconv.Itoa(k)] = v
	}
	return out
}
