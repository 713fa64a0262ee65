package session_repo

import (
	"context"
	"safecracker/internal/repository"
	"sync"
	"time"
)

type repo struct {
	mtx      sync.RWMutex
	sessions map[string]*repository.StoredSession
	maxLive  int
	ttl      time.Duration
}

// NewSessionRepository Хранилище игр в памяти.
// maxLive ограничивает число живых игр, ttl - время простоя до удаления
func NewSessionRepository(maxLive int, ttl time.Duration) repository.SessionRepository {
	return &repo{
		sessions: make(map[string]*repository.StoredSession),
		maxLive:  maxLive,
		ttl:      ttl,
	}
}

// Create сохраняет новую игру. Перед вставкой выкидывает просроченные
func (r *repo) Create(_ context.Context, s *repository.StoredSession) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[s.ID]; ok {
		return repository.ErrSessionDuplicate
	}

	r.evictExpired(s.CreatedAt)
	if r.maxLive > 0 && len(r.sessions) >= r.maxLive {
		return repository.ErrTooManySessions
	}

	r.sessions[s.ID] = s
	return nil
}

// Get возвращает игру по ID. Игра, простоявшая дольше ttl к моменту at, удаляется
func (r *repo) Get(_ context.Context, id string, at time.Time) (*repository.StoredSession, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.live(id, at)
}

// Touch продлевает жизнь игры
func (r *repo) Touch(_ context.Context, id string, at time.Time) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, err := r.live(id, at)
	if err != nil {
		return err
	}
	s.UpdatedAt = at
	return nil
}

func (r *repo) Delete(_ context.Context, id string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *repo) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.sessions)
}

// Вызывается под mtx
func (r *repo) live(id string, now time.Time) (*repository.StoredSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if r.expired(s, now) {
		delete(r.sessions, id)
		return nil, repository.ErrSessionNotFound
	}
	return s, nil
}

// Вызывается под mtx
func (r *repo) evictExpired(now time.Time) {
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
		}
	}
}

func (r *repo) expired(s *repository.StoredSession, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.UpdatedAt) > r.ttl
}
