package game

import "fmt"

// Cell одна ячейка сейфа
type Cell struct {
	position   int
	multiplier int
	revealed   bool
}

func newCell(position, multiplier int) Cell {
	return Cell{position: position, multiplier: multiplier}
}

// Position номер ячейки 1..9
func (c Cell) Position() int { return c.position }

// Multiplier множитель, спрятанный в ячейке
func (c Cell) Multiplier() int { return c.multiplier }

// Revealed открыта ли ячейка
func (c Cell) Revealed() bool { return c.revealed }

// CellView то, что видит игрок: номер закрытой ячейки или множитель открытой
type CellView struct {
	Position   int
	Multiplier int // 0, пока ячейка закрыта
	Revealed   bool
}

func (c Cell) view() CellView {
	v := CellView{Position: c.position, Revealed: c.revealed}
	if c.revealed {
		v.Multiplier = c.multiplier
	}
	return v
}

// String отрисовка ячейки в сетке: "  1  " или " x15 "
func (v CellView) String() string {
	if v.Revealed {
		return fmt.Sprintf(" x%d ", v.Multiplier)
	}
	return fmt.Sprintf("  %d  ", v.Position)
}
