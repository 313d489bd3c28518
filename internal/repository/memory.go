package repository

import (
	"slices"
	"sync"
)

// MemoryStorage keeps values in process memory. Used by tests and the memory driver.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStorage creates an empty memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

// Get returns a copy of the stored value
func (s *MemoryStorage) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

// Set stores a copy of value under key
func (s *MemoryStorage) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = slices.Clone(value)
	return nil
}

// Ping always succeeds
func (s *MemoryStorage) Ping() error { return nil }

// Close is a no-op
func (s *MemoryStorage) Close() error { return nil }
