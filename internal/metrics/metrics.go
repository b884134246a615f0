package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures in-memory counters about source fetches and pipeline runs and
// forwards them to OpenTelemetry instruments when those are configured.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*sourceStats
	outcomes map[string]int
	written  map[string]int
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:    make(map[string]*sourceStats),
		outcomes: make(map[string]int),
		written:  make(map[string]int),
		otel:     otel,
	}
}

// RecordSourceAttempt increments counters for one fetch and stores the last observed latency.
func (r *Recorder) RecordSourceAttempt(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(source)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceAttempt(source, duration, err)
	}
}

// RecordRateLimit tracks that a source response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(source string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(source)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(source, retryAfter)
	}
}

// RecordRunOutcome counts pipeline runs by outcome and records how many candidate
// tables the run saw.
func (r *Recorder) RecordRunOutcome(outcome string, candidates int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.outcomes[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(outcome, candidates)
	}
}

// RecordArtifactWrite counts artifact files actually rewritten on disk.
func (r *Recorder) RecordArtifactWrite(artifact string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.written[artifact]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordArtifactWrite(artifact)
	}
}

// SourceCalls returns the total attempts recorded for a source.
func (r *Recorder) SourceCalls(source string) int {
	return r.Snapshot(source).Calls
}

// SourceErrors returns the total failed attempts recorded for a source.
func (r *Recorder) SourceErrors(source string) int {
	return r.Snapshot(source).Errors
}

// RateLimitHits returns the number of rate limit events seen for a source.
func (r *Recorder) RateLimitHits(source string) int {
	return r.Snapshot(source).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a source.
func (r *Recorder) LastRetryAfter(source string) time.Duration {
	return r.Snapshot(source).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a fetch.
func (r *Recorder) LastCallLatency(source string) time.Duration {
	return r.Snapshot(source).LastCallLatency
}

// RunOutcomes returns how many runs ended with outcome.
func (r *Recorder) RunOutcomes(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcomes[outcome]
}

// ArtifactWrites returns how many times artifact was rewritten.
func (r *Recorder) ArtifactWrites(artifact string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.written[artifact]
}

// Snapshot is a copy of the current stats for one source.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(source string) *sourceStats {
	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}
