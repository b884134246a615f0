package source

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/standings-overlay/internal/logging"
	"github.com/preston-bernstein/standings-overlay/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 500 * time.Millisecond
	maxBackoff           = 30 * time.Second
	defaultSourceName    = "source"
)

// retryingSource wraps a MarkupSource with exponential backoff.
type retryingSource struct {
	inner       MarkupSource
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

// NewRetryingSource wraps inner with retries. If maxAttempts/initial are <= 0, defaults are used.
// Every attempt is recorded against name; rate-limit responses honour Retry-After.
func NewRetryingSource(inner MarkupSource, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) MarkupSource {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if name == "" {
		name = defaultSourceName
	}
	return &retryingSource{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingSource) FetchMarkup(ctx context.Context) (string, error) {
	if r.inner == nil {
		return "", ErrSourceUnavailable
	}

	hinted := &hintedBackOff{BackOff: r.newBackOff()}
	policy := backoff.WithContext(backoff.WithMaxRetries(hinted, uint64(r.maxAttempts-1)), ctx)

	var (
		markup  string
		attempt int
	)
	op := func() error {
		attempt++
		start := time.Now()
		body, err := r.inner.FetchMarkup(ctx)
		r.recorder.RecordSourceAttempt(r.name, time.Since(start), err)
		if err == nil {
			markup = body
			return nil
		}
		if rlErr, ok := AsRateLimitError(err); ok {
			r.recorder.RecordRateLimit(r.name, rlErr.RetryAfter)
			hinted.hint(rlErr.RetryAfter)
		}
		if !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		logWithSource(ctx, r.logger, slog.LevelWarn, r.name, "source fetch retry",
			logging.FieldAttempt, attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"error", err,
		)
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		logWithSource(ctx, r.logger, slog.LevelWarn, r.name, "source fetch failed", "attempts", attempt, "error", err)
		return "", err
	}
	return markup, nil
}

// hintedBackOff lets a Retry-After value replace the next computed delay.
type hintedBackOff struct {
	backoff.BackOff
	pending time.Duration
}

func (h *hintedBackOff) hint(d time.Duration) {
	if d > 0 {
		h.pending = d
	}
}

func (h *hintedBackOff) NextBackOff() time.Duration {
	next := h.BackOff.NextBackOff()
	if h.pending > 0 && next != backoff.Stop {
		next, h.pending = h.pending, 0
	}
	return next
}

func (h *hintedBackOff) Reset() {
	h.pending = 0
	h.BackOff.Reset()
}
