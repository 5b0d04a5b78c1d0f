package store

import (
	"context"
	"sync"
	"time"

	"github.com/bigappetite/backend/internal/domain"
)

// sessionItem wraps a stored session with its expiration time
type sessionItem struct {
	session    *domain.Session
	expiration time.Time
}

// MemoryStore is a thread-safe in-memory session store with TTL support.
// Every Put refreshes the session's TTL.
type MemoryStore struct {
	data  map[string]sessionItem
	mutex sync.RWMutex
	ttl   time.Duration
}

// NewMemoryStore creates an in-memory session store. Sessions expire after
// ttl since their last write.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	s := &MemoryStore{
		data: make(map[string]sessionItem),
		ttl:  ttl,
	}

	// Remove expired sessions every 10 minutes
	go s.cleanupExpired()

	return s
}

// Get retrieves a session by id
func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.data[id]
	if !exists || time.Now().After(item.expiration) {
		return nil, domain.ErrSessionNotFound
	}

	return item.session, nil
}

// Put stores a session, refreshing its TTL
func (s *MemoryStore) Put(ctx context.Context, id string, session *domain.Session) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[id] = sessionItem{
		session:    session,
		expiration: time.Now().Add(s.ttl),
	}
	return nil
}

// Delete removes a session
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, id)
	return nil
}

// Len returns the current number of stored sessions (for debugging/monitoring)
func (s *MemoryStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// cleanupExpired removes expired sessions periodically
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for id, item := range s.data {
			if now.After(item.expiration) {
				delete(s.data, id)
			}
		}
		s.mutex.Unlock()
	}
}
