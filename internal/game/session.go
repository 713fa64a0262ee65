package game

import (
	"context"
	"math"

	"github.com/looplab/fsm"
)

// Состояния сессии
const (
	StateAwaitingWager = "awaiting_wager"
	StatePlaying       = "playing"
	StateWon           = "won"
)

// События автомата
const (
	eventWager = "wager"
	eventWin   = "win"
)

// Верхняя граница ставки, при которой выплата x20 помещается в int
const maxWager = math.MaxInt / 20

// Status статус исхода
type Status int

const (
	StatusPending Status = iota
	StatusWon
)

func (s Status) String() string {
	if s == StatusWon {
		return "won"
	}
	return "pending"
}

// Outcome исход сессии
type Outcome struct {
	Status     Status
	Multiplier int
	Payout     int
}

// Session одна игра: ставка, открытие ячеек до выигрыша, выплата
type Session struct {
	board   *Board
	fsm     *fsm.FSM
	wager   int
	turns   int
	outcome Outcome
}

// NewSession Создать сессию поверх сгенерированного поля
func NewSession(board *Board) *Session {
	s := &Session{board: board}
	s.fsm = fsm.NewFSM(
		StateAwaitingWager,
		fsm.Events{
			{Name: eventWager, Src: []string{StateAwaitingWager}, Dst: StatePlaying},
			{Name: eventWin, Src: []string{StatePlaying}, Dst: StateWon},
		},
		fsm.Callbacks{
			"enter_" + StatePlaying: func(_ context.Context, e *fsm.Event) {
				s.wager = e.Args[0].(int)
			},
			"enter_" + StateWon: func(_ context.Context, e *fsm.Event) {
				m := e.Args[0].(int)
				s.outcome = Outcome{Status: StatusWon, Multiplier: m, Payout: m * s.wager}
			},
		},
	)
	return s
}

// SetWager принимает ставку. Ставка задаётся один раз до первого открытия
func (s *Session) SetWager(amount int) error {
	if amount <= 0 || amount > maxWager {
		return ErrInvalidWager
	}
	if !s.fsm.Can(eventWager) {
		return ErrWagerLocked
	}
	return s.fsm.Event(context.Background(), eventWager, amount)
}

// PlayTurn открывает одну ячейку и проверяет выигрыш
func (s *Session) PlayTurn() (Reveal, error) {
	switch s.fsm.Current() {
	case StateWon:
		return Reveal{}, ErrGameAlreadyWon
	case StateAwaitingWager:
		return Reveal{}, ErrWagerRequired
	}

	rev, err := s.board.Reveal()
	if err != nil {
		return Reveal{}, err
	}
	s.turns++

	m, err := s.board.CheckWin()
	if err != nil {
		// Группа ещё не собрана
		return rev, nil
	}
	if err := s.fsm.Event(context.Background(), eventWin, m); err != nil {
		return rev, err
	}
	return rev, nil
}

// Outcome текущий исход: Pending или Won(multiplier, payout)
func (s *Session) Outcome() Outcome { return s.outcome }

// State текущее состояние автомата
func (s *Session) State() string { return s.fsm.Current() }

// Wager принятая ставка, 0 до SetWager
func (s *Session) Wager() int { return s.wager }

// Turns количество открытых ячеек
func (s *Session) Turns() int { return s.turns }

// Board поле сессии (только для чтения)
func (s *Session) Board() *Board { return s.board }
