package domain

// Store holds the most recent snapshot in memory.
type Store interface {
	Latest() (Snapshot, bool)
	SetLatest(snap Snapshot)
	// SetLatestIfEmpty stores snap only when nothing is held yet and returns
	// whatever the store holds afterwards.
	SetLatestIfEmpty(snap Snapshot) Snapshot
}

// SnapshotLoader reads the last snapshot persisted to disk.
type SnapshotLoader interface {
	LoadSnapshot() (Snapshot, error)
}

// Service coordinates reads of the latest standings, falling back to disk after a restart.
type Service struct {
	store    Store
	fallback SnapshotLoader
}

// NewService constructs a Service with the provided Store and optional disk fallback.
func NewService(store Store, fallback SnapshotLoader) *Service {
	return &Service{store: store, fallback: fallback}
}

// Latest returns the newest snapshot. When memory is empty the persisted one is
// loaded and cached, unless a poll published a fresher one while it was loading.
func (s *Service) Latest() (Snapshot, bool) {
	if snap, ok := s.store.Latest(); ok {
		return snap, true
	}
	if s.fallback == nil {
		return Snapshot{}, false
	}
	snap, err := s.fallback.LoadSnapshot()
	if err != nil {
		return Snapshot{}, false
	}
	return s.store.SetLatestIfEmpty(snap), true
}

// Team returns the followed team's status from the latest snapshot.
func (s *Service) Team() (TeamStatus, bool) {
	snap, ok := s.Latest()
	if !ok {
		return TeamStatus{}, false
	}
	return NewTeamStatus(snap), true
}

// Replace swaps the in-memory snapshot.
func (s *Service) Replace(snap Snapshot) {
	s.store.SetLatest(snap)
}
