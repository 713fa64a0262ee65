// Package game движок сейфа: пул множителей, поле 3x3 и игровая сессия.
package game

// New Создать новую сессию со свежим полем
func New(pool *Pool, rng Source) *Session {
	return NewSession(NewBoard(pool, rng))
}
