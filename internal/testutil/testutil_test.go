package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/standings-overlay/internal/standings"
)

func TestClockHelpers(t *testing.T) {
	if got := NowAt(MatchDay)(); !got.Equal(MatchDay) {
		t.Fatalf("expected fixed match day, got %v", got)
	}

	clock := StepClock(MatchDay, time.Minute)
	first, second := clock(), clock()
	if !first.Equal(MatchDay) || second.Sub(first) != time.Minute {
		t.Fatalf("expected one-minute steps from match day, got %v then %v", first, second)
	}
}

func TestSampleSnapshot(t *testing.T) {
	snap := SampleSnapshot("run-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if snap.Outcome != standings.OutcomeOK {
		t.Fatalf("expected ok outcome, got %s", snap.Outcome)
	}
	if snap.TeamLine() != "2 - CV Sant Just (15)" {
		t.Fatalf("unexpected team line %q", snap.TeamLine())
	}
	if snap.Selected != 1 || len(snap.Top) != 3 {
		t.Fatalf("unexpected selection %d top=%d", snap.Selected, len(snap.Top))
	}
}

func TestSourceHelpers(t *testing.T) {
	ctx := context.Background()
	markup, err := StaticSource{Markup: "x"}.FetchMarkup(ctx)
	if err != nil || markup != "x" {
		t.Fatalf("expected static markup, got %q %v", markup, err)
	}
	boom := errors.New("boom")
	if _, err := (ErrSource{Err: boom}).FetchMarkup(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected error passthrough, got %v", err)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer secret" {
			w.WriteHeader(http.StatusAccepted)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	AssertStatus(t, ServeRequest(handler, req), http.StatusCreated)
	AssertStatus(t, ServeWithToken(handler, http.MethodPost, "/admin", "secret"), http.StatusAccepted)
	AssertStatus(t, ServeWithToken(handler, http.MethodPost, "/admin", ""), http.StatusCreated)
}

func TestFakeListener(t *testing.T) {
	clean := &FakeListener{}
	if err := clean.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed from a clean listener, got %v", err)
	}
	if clean.Handler() == nil || clean.Addr() == "" {
		t.Fatal("expected default handler and address")
	}

	failing := &FakeListener{ListenErr: errors.New("address already in use"), ShutdownErr: errors.New("already closed")}
	if err := failing.ListenAndServe(); err == nil || err.Error() != "address already in use" {
		t.Fatalf("expected configured listen error, got %v", err)
	}
	if err := failing.Shutdown(context.Background()); err == nil {
		t.Fatal("expected configured shutdown error")
	}
	if failing.Listens() != 1 || failing.Shutdowns() != 1 {
		t.Fatalf("expected one listen and one shutdown, got %d/%d", failing.Listens(), failing.Shutdowns())
	}

	held := &FakeListener{Hold: make(chan struct{})}
	done := make(chan error, 1)
	go func() { done <- held.Shutdown(context.Background()) }()
	close(held.Hold)
	if err := <-done; err != nil {
		t.Fatalf("expected released shutdown to succeed, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stuck := &FakeListener{Hold: make(chan struct{})}
	if err := stuck.Shutdown(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected held shutdown to end with ctx, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("candidate scored", "score", 14)
	if !strings.Contains(buf.String(), "score=14") {
		t.Fatalf("expected debug line in buffer, got %q", buf.String())
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}
