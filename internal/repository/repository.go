package repository

import (
	"context"
	"errors"
	"safecracker/internal/game"
	"safecracker/internal/model"
	"time"
)

var (
	ErrSessionNotFound  = errors.New("game session not found")
	ErrTooManySessions  = errors.New("too many live game sessions")
	ErrSessionDuplicate = errors.New("game session already exists")
)

// StoredSession игровая сессия в памяти вместе с метаданными
type StoredSession struct {
	ID        string
	Session   *game.Session
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, s *StoredSession) error
	Get(ctx context.Context, id string, at time.Time) (*StoredSession, error)
	Touch(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	Len() int
}

type StatsRepository interface {
	Record(round model.RoundRecord)
	Snapshot() model.SafeStats
	Reset()
}
