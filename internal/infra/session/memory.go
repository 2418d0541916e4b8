package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	session   *Session
	expiresAt time.Time
}

// MemoryStore хранилище сессий в памяти процесса с истечением по TTL.
// Подходит для одного экземпляра сервиса.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[uuid.UUID]memoryEntry
}

// NewMemoryStore создает хранилище сессий в памяти
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]memoryEntry),
	}
}

// Create создает пустую сессию для комнаты
func (s *MemoryStore) Create(ctx context.Context, roomID uuid.UUID) (*Session, error) {
	sess := newSession(roomID, s.now())
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get возвращает копию сессии
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || !s.now().Before(entry.expiresAt) {
		return nil, ErrSessionNotFound
	}
	return cloneSession(entry.session), nil
}

// Save сохраняет сессию и продлевает TTL
func (s *MemoryStore) Save(_ context.Context, sess *Session) error {
	now := s.now()
	stored := cloneSession(sess)
	stored.UpdatedAt = now
	sess.UpdatedAt = now

	s.mu.Lock()
	s.sessions[sess.ID] = memoryEntry{session: stored, expiresAt: now.Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

// Delete удаляет сессию. Удаление отсутствующей сессии не ошибка.
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// Len количество хранимых сессий, включая еще не вычищенные истекшие
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// RunJanitor периодически удаляет истекшие сессии до отмены ctx
func (s *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *MemoryStore) evictExpired() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, id)
		}
	}
}
