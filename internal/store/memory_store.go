package store

import (
	"sync"

	"github.com/preston-bernstein/standings-overlay/internal/domain"
)

// MemoryStore keeps a thread-safe copy of the latest snapshot in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	latest domain.Snapshot
	ok     bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Latest returns the current snapshot and whether one has been stored.
func (s *MemoryStore) Latest() (domain.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.latest, s.ok
}

// SetLatest replaces the stored snapshot.
func (s *MemoryStore) SetLatest(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = snap
	s.ok = true
}

// SetLatestIfEmpty stores snap unless a snapshot is already held, and returns the
// snapshot held afterwards.
func (s *MemoryStore) SetLatestIfEmpty(snap domain.Snapshot) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ok {
		s.latest = snap
		s.ok = true
	}
	return s.latest
}
