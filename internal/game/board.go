package game

import (
	"fmt"
	"strings"
)

// tally счётчики по одному множителю.
// placed заполняется при генерации поля, revealed во время игры
type tally struct {
	placed   int
	revealed int
}

// Board поле сейфа 3x3
type Board struct {
	rng     Source
	chosen  [chosenCount]int
	cells   [boardSize]Cell
	tallies map[int]*tally
	// Позиции закрытых ячеек по возрастанию
	hidden []int
	// Множитель, первым набравший 3 открытых ячейки
	winner int
}

// NewBoard генерирует поле: три множителя из пула, по три ячейки на каждый
func NewBoard(pool *Pool, rng Source) *Board {
	b := newBoard(pool.SelectThree(rng), rng)

	// Отбор с отклонением: тянем случайный множитель, пока по нему не набрано 3 ячейки
	placed := 0
	for placed < boardSize {
		m := b.chosen[rng.IntN(chosenCount)]
		t := b.tallies[m]
		if t.placed >= cellsPerMultiplier {
			continue
		}
		b.cells[placed] = newCell(placed+1, m)
		t.placed++
		placed++
	}

	return b
}

// NewBoardFromLayout собирает поле из готовой раскладки (позиция i+1 -> layout[i]).
// Раскладка должна содержать ровно три разных множителя из пула, по три раза каждый
func NewBoardFromLayout(pool *Pool, layout [boardSize]int, rng Source) (*Board, error) {
	counts := make(map[int]int, chosenCount)
	for _, m := range layout {
		if !pool.Contains(m) {
			return nil, fmt.Errorf("%w: multiplier %d is not in pool", ErrInvalidLayout, m)
		}
		counts[m]++
	}
	if len(counts) != chosenCount {
		return nil, fmt.Errorf("%w: expected %d distinct multipliers, got %d", ErrInvalidLayout, chosenCount, len(counts))
	}

	var chosen [chosenCount]int
	i := 0
	for _, m := range pool.Values() {
		c, ok := counts[m]
		if !ok {
			continue
		}
		if c != cellsPerMultiplier {
			return nil, fmt.Errorf("%w: multiplier %d appears %d times", ErrInvalidLayout, m, c)
		}
		chosen[i] = m
		i++
	}

	b := newBoard(chosen, rng)
	for pos, m := range layout {
		b.cells[pos] = newCell(pos+1, m)
		b.tallies[m].placed++
	}
	return b, nil
}

func newBoard(chosen [chosenCount]int, rng Source) *Board {
	b := &Board{
		rng:     rng,
		chosen:  chosen,
		tallies: make(map[int]*tally, chosenCount),
		hidden:  make([]int, 0, boardSize),
	}
	for _, m := range chosen {
		b.tallies[m] = &tally{}
	}
	for pos := 1; pos <= boardSize; pos++ {
		b.hidden = append(b.hidden, pos)
	}
	return b
}

// Reveal результат открытия ячейки
type Reveal struct {
	Position   int
	Multiplier int
}

// Reveal открывает случайную закрытую ячейку.
// Выбор идёт только среди закрытых позиций, поэтому каждый вызов продвигает игру
func (b *Board) Reveal() (Reveal, error) {
	if len(b.hidden) == 0 {
		return Reveal{}, ErrNoCellsAvailable
	}

	idx := b.rng.IntN(len(b.hidden))
	pos := b.hidden[idx]
	b.hidden = append(b.hidden[:idx], b.hidden[idx+1:]...)

	cell := &b.cells[pos-1]
	cell.revealed = true
	b.tallies[cell.multiplier].revealed++

	return Reveal{Position: pos, Multiplier: cell.multiplier}, nil
}

// CheckWin возвращает множитель, все три ячейки которого открыты.
// Первый найденный победитель запоминается и больше не меняется
func (b *Board) CheckWin() (int, error) {
	if b.winner != 0 {
		return b.winner, nil
	}
	for _, m := range b.chosen {
		if b.tallies[m].revealed == cellsPerMultiplier {
			b.winner = m
			return m, nil
		}
	}
	return 0, ErrNoWinYet
}

// Render снимок поля по позициям 1..9
func (b *Board) Render() []CellView {
	views := make([]CellView, boardSize)
	for i, c := range b.cells {
		views[i] = c.view()
	}
	return views
}

// String текстовая сетка 3x3 для консоли
func (b *Board) String() string {
	const rule = "-------------------\n"

	var sb strings.Builder
	sb.WriteString(rule)
	for i, v := range b.Render() {
		sb.WriteString("|")
		sb.WriteString(v.String())
		if (i+1)%rowLength == 0 {
			sb.WriteString("|\n")
			sb.WriteString(rule)
		}
	}
	return sb.String()
}

// Chosen множители раунда по возрастанию
func (b *Board) Chosen() [chosenCount]int { return b.chosen }

// Cells копия ячеек поля
func (b *Board) Cells() []Cell {
	out := make([]Cell, boardSize)
	copy(out, b.cells[:])
	return out
}

// Hidden копия списка закрытых позиций
func (b *Board) Hidden() []int {
	out := make([]int, len(b.hidden))
	copy(out, b.hidden)
	return out
}

// RevealedCount сколько ячеек с множителем m уже открыто
func (b *Board) RevealedCount(m int) int {
	t, ok := b.tallies[m]
	if !ok {
		return 0
	}
	return t.revealed
}

// PlacedCount сколько ячеек с множителем m размещено на поле
func (b *Board) PlacedCount(m int) int {
	t, ok := b.tallies[m]
	if !ok {
		return 0
	}
	return t.placed
}
