package game

// zeroSource всегда выбирает первый элемент и не перемешивает
type zeroSource struct{}

func (zeroSource) IntN(int) int                { return 0 }
func (zeroSource) Shuffle(int, func(i, j int)) {}

// scriptSource отдаёт заранее заданные индексы, затем нули
type scriptSource struct {
	picks []int
}

func (s *scriptSource) IntN(n int) int {
	if len(s.picks) == 0 {
		return 0
	}
	v := s.picks[0]
	s.picks = s.picks[1:]
	return v % n
}

func (s *scriptSource) Shuffle(int, func(i, j int)) {}

var scenarioLayout = [boardSize]int{15, 15, 15, 18, 18, 18, 20, 20, 20}
