package flash

import (
	"context"
	"sync"
)

// MemoryStore implements Store with two in-memory generations: payloads
// flashed during the current cycle land in the "next" generation and become
// readable after Rotate advances the cycle, which is what a session-backed
// flash store does implicitly at the request boundary. Suitable for tests
// and single-process development servers.
//
// Unlike bags, a MemoryStore is shared across requests and is safe for
// concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	current map[string]string
	next    map[string]string
}

// NewMemoryStore creates an empty in-memory flash store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		current: make(map[string]string),
		next:    make(map[string]string),
	}
}

// Get consumes the payload flashed for key during the previous cycle.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.current[key]
	if !ok {
		return "", ErrNoFlashData
	}

	delete(s.current, key)
	return value, nil
}

// Flash stores the payload for key, visible after the next Rotate.
func (s *MemoryStore) Flash(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next[key] = value
	return nil
}

// Rotate advances the store by one cycle: freshly flashed payloads become
// readable and anything left unread from the previous cycle is dropped.
func (s *MemoryStore) Rotate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = s.next
	s.next = make(map[string]string)
}
