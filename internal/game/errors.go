package game

import "errors"

var (
	// ErrInvalidWager ставка не положительная или слишком большая для расчёта выплаты
	ErrInvalidWager = errors.New("wager must be a positive integer")
	// ErrWagerLocked ставка уже принята для этой сессии
	ErrWagerLocked = errors.New("wager already placed")
	// ErrWagerRequired попытка открыть ячейку до ставки
	ErrWagerRequired = errors.New("wager must be placed before spinning")
	// ErrGameAlreadyWon сессия уже завершена выигрышем
	ErrGameAlreadyWon = errors.New("game already won")
	// ErrNoCellsAvailable все ячейки уже открыты
	ErrNoCellsAvailable = errors.New("no hidden cells left")
	// ErrNoWinYet ни одна группа множителей ещё не открыта полностью
	ErrNoWinYet = errors.New("no winning multiplier yet")
	// ErrInvalidLayout раскладка не соответствует правилу 3 ячейки на множитель
	ErrInvalidLayout = errors.New("invalid board layout")
)
