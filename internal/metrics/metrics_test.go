package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksSourceAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordSourceAttempt("rfevb", 10*time.Millisecond, nil)
	rec.RecordSourceAttempt("rfevb", 15*time.Millisecond, errors.New("boom"))

	if got := rec.SourceCalls("rfevb"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.SourceErrors("rfevb"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("rfevb"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("rfevb")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if empty := rec.Snapshot("unknown"); empty != (Snapshot{}) {
		t.Fatalf("expected zero snapshot for unknown source, got %+v", empty)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("rfevb", 5*time.Second)
	rec.RecordRateLimit("rfevb", 0)

	if got := rec.RateLimitHits("rfevb"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("rfevb"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksRunsAndArtifacts(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRunOutcome("ok", 3)
	rec.RecordRunOutcome("ok", 2)
	rec.RecordRunOutcome("no_table", 0)
	rec.RecordArtifactWrite("classificacio.csv")

	if got := rec.RunOutcomes("ok"); got != 2 {
		t.Fatalf("expected 2 ok runs, got %d", got)
	}
	if got := rec.RunOutcomes("no_table"); got != 1 {
		t.Fatalf("expected 1 no_table run, got %d", got)
	}
	if got := rec.ArtifactWrites("classificacio.csv"); got != 1 {
		t.Fatalf("expected 1 csv write, got %d", got)
	}
	if got := rec.ArtifactWrites("standings.json"); got != 0 {
		t.Fatalf("expected no json writes, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordSourceAttempt("x", time.Millisecond, nil)
	rec.RecordRateLimit("x", time.Second)
	rec.RecordRunOutcome("ok", 1)
	rec.RecordArtifactWrite("x")
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)

	if rec.SourceCalls("x") != 0 || rec.RunOutcomes("ok") != 0 || rec.ArtifactWrites("x") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}
