package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/standings-overlay/internal/domain"
	"github.com/preston-bernstein/standings-overlay/internal/output"
)

// StubSource is a test double for source.MarkupSource.
type StubSource struct {
	Markup string
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}

	mu sync.Mutex
}

// SetResult swaps the markup and error returned by later calls.
func (s *StubSource) SetResult(markup string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Markup = markup
	s.Err = err
}

// FetchMarkup returns the configured markup and error while tracking calls.
func (s *StubSource) FetchMarkup(ctx context.Context) (string, error) {
	_ = ctx
	if s.Notify != nil {
		s.mu.Lock()
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
		s.mu.Unlock()
	}
	s.Calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Markup, s.Err
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	Written []domain.Snapshot
	Err     error

	mu sync.Mutex
}

// Write records the snapshot for verification in tests.
func (w *StubSnapshotWriter) Write(snap domain.Snapshot) (output.Report, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return output.Report{}, w.Err
	}
	w.Written = append(w.Written, snap)
	return output.Report{Written: []string{output.TopFile}}, nil
}

// Count returns how many snapshots were written.
func (w *StubSnapshotWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.Written)
}

// Last returns the most recent snapshot written.
func (w *StubSnapshotWriter) Last() (domain.Snapshot, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.Written) == 0 {
		return domain.Snapshot{}, false
	}
	return w.Written[len(w.Written)-1], true
}

// StubPublisher is a test double for poller.Publisher.
type StubPublisher struct {
	Published []domain.Snapshot

	mu sync.Mutex
}

// Replace records the published snapshot.
func (p *StubPublisher) Replace(snap domain.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Published = append(p.Published, snap)
}

// Count returns how many snapshots were published.
func (p *StubPublisher) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Published)
}
