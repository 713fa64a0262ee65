package game

import "sort"

const (
	// Количество множителей в раунде
	chosenCount = 3
	// Ячеек на один множитель
	cellsPerMultiplier = 3
	// Размер поля 3x3
	boardSize = chosenCount * cellsPerMultiplier
	// Ширина строки при отрисовке
	rowLength = 3
)

// Pool фиксированный набор допустимых множителей
type Pool struct {
	values []int
}

// NewPool Создать пул множителей x15..x20
func NewPool() *Pool {
	return &Pool{values: []int{15, 16, 17, 18, 19, 20}}
}

// Values возвращает копию набора множителей
func (p *Pool) Values() []int {
	out := make([]int, len(p.values))
	copy(out, p.values)
	return out
}

// Contains проверяет, входит ли множитель в пул
func (p *Pool) Contains(m int) bool {
	for _, v := range p.values {
		if v == m {
			return true
		}
	}
	return false
}

// SelectThree перемешивает копию пула и берёт первые три значения.
// Результат отсортирован по возрастанию, чтобы проверка выигрыша шла в фиксированном порядке
func (p *Pool) SelectThree(rng Source) [chosenCount]int {
	shuffled := p.Values()
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var chosen [chosenCount]int
	copy(chosen[:], shuffled[:chosenCount])
	sort.Ints(chosen[:])
	return chosen
}
