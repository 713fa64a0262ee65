package game

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source источник случайности для пула множителей и поля.
// *rand.Rand из math/rand/v2 удовлетворяет интерфейсу.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSource создаёт генератор на процесс. seed == 0 означает посев от текущего времени
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// LockedSource потокобезопасная обёртка над общим генератором (для HTTP-сервера)
type LockedSource struct {
	mtx sync.Mutex
	src Source
}

func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

func (l *LockedSource) IntN(n int) int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.src.IntN(n)
}

func (l *LockedSource) Shuffle(n int, swap func(i, j int)) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.src.Shuffle(n, swap)
}
