package source

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// rateLimitedSource enforces a minimum interval between upstream calls.
type rateLimitedSource struct {
	next     MarkupSource
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu   sync.Mutex
	last time.Time
}

// NewRateLimitedSource returns a MarkupSource that spaces calls at least interval apart.
// The first call goes straight through; later calls block until the interval has elapsed.
func NewRateLimitedSource(next MarkupSource, interval time.Duration, logger *slog.Logger) MarkupSource {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedSource{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *rateLimitedSource) FetchMarkup(ctx context.Context) (string, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logWithSource(ctx, p.logger, slog.LevelWarn, "rate-limited", "source unavailable")
		}
		return "", ErrSourceUnavailable
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() {
		if wait := p.interval - p.now().Sub(p.last); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				logWithSource(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled")
				return "", ctx.Err()
			case <-timer.C:
			}
		}
	}
	p.last = p.now()
	return p.next.FetchMarkup(ctx)
}
