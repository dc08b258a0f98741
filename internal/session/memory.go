package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	userID    int64
	expiresAt time.Time // zero means no expiry
}

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

// NewMemoryStore creates an in-process session Store. It backs the "memory"
// session backend for single-node development setups and the test suite.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *memoryStore) Save(_ context.Context, token string, userID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memoryEntry{userID: userID}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	s.sessions[token] = entry
	return nil
}

func (s *memoryStore) Lookup(_ context.Context, token string, ttl time.Duration) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[token]
	if !ok {
		return 0, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(s.sessions, token)
		return 0, false, nil
	}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
		s.sessions[token] = entry
	}
	return entry.userID, true, nil
}

func (s *memoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
