package store

import (
	"sync"

	domainmatch "livescore-service/internal/domain/match"
)

// MemoryStore keeps a thread-safe snapshot of matches in memory.
// Snapshots are replaced wholesale, never mutated in place, so readers
// always observe a complete fetch cycle. Fetch order is preserved to
// keep league grouping stable.
type MemoryStore struct {
	mu      sync.RWMutex
	matches []domainmatch.Match
	byID    map[string]int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]int)}
}

// ListMatches returns a copy of the current matches in fetch order.
func (s *MemoryStore) ListMatches() []domainmatch.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domainmatch.Match, len(s.matches))
	copy(result, s.matches)
	return result
}

// GetMatch retrieves a match by ID.
func (s *MemoryStore) GetMatch(id string) (domainmatch.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return domainmatch.Match{}, false
	}
	return s.matches[idx], true
}

// SetMatches replaces the existing snapshot with a new one.
func (s *MemoryStore) SetMatches(matches []domainmatch.Match) {
	snapshot := make([]domainmatch.Match, len(matches))
	copy(snapshot, matches)
	byID := make(map[string]int, len(snapshot))
	for i, m := range snapshot {
		if _, dup := byID[m.ID]; dup {
			continue // first occurrence wins
		}
		byID[m.ID] = i
	}

	s.mu.Lock()
	s.matches = snapshot
	s.byID = byID
	s.mu.Unlock()
}
