// Package prefs models the user preference store as an explicit
// collaborator instead of ambient global state, so components that
// need a remembered preference can be tested in isolation.
package prefs

import "sync"

// KeyLanguage is where the preferred language code is stored.
const KeyLanguage = "preferred_language"

// Store is a minimal key/value preference capability.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryStore is a thread-safe in-memory Store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value for key if present.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}
