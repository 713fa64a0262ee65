package safe

type WagerRequest struct {
	Amount int `json:"amount"` // Размер ставки (положительное целое)
}

type Box struct {
	Position   int  `json:"position"`             // 1-9
	Multiplier int  `json:"multiplier,omitempty"` // Только у открытых ячеек
	Open       bool `json:"open"`
}

type Outcome struct {
	Won        bool `json:"won"`
	Multiplier int  `json:"multiplier,omitempty"` // Выигравший множитель
	Payout     int  `json:"payout,omitempty"`     // multiplier * wager
}

type GameResponse struct {
	ID        string  `json:"id"`
	State     string  `json:"state"` // awaiting_wager | playing | won
	Wager     int     `json:"wager"`
	Turns     int     `json:"turns"` // Сколько ячеек открыто
	Board     []Box   `json:"board"`
	Outcome   Outcome `json:"outcome"`
	CreatedAt string  `json:"created_at"`
}

type SpinResponse struct {
	Position   int          `json:"position"`   // Открытая ячейка
	Multiplier int          `json:"multiplier"` // Её множитель
	Game       GameResponse `json:"game"`
}

type StatsResponse struct {
	Rounds          int            `json:"rounds"`
	TotalWager      string         `json:"total_wager"`
	TotalPayout     string         `json:"total_payout"`
	RTP             string         `json:"rtp"`        // В процентах
	WindowRTP       string         `json:"window_rtp"` // RTP последних раундов
	AverageReveals  string         `json:"average_reveals"`
	WinsByMult      map[string]int `json:"wins_by_multiplier"`
	RevealHistogram map[string]int `json:"reveal_histogram"`
}
