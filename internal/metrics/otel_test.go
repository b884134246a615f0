package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "standings-overlay-test",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil || handler == nil || shutdown == nil {
		t.Fatalf("expected recorder, handler and shutdown")
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)
	rec.RecordSourceAttempt("rfevb", time.Millisecond, nil)
	rec.RecordRateLimit("rfevb", time.Second)
	rec.RecordRunOutcome("ok", 2)
	rec.RecordArtifactWrite("classificacio.csv")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics handler, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "standings_runs_total") {
		t.Fatalf("expected run counter in metrics output")
	}
}

func TestSetupPropagatesReaderErrors(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("reader failed")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected reader error")
	}
}

func TestSetupPropagatesOTLPErrors(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })
	otlpReaderFactory = func(context.Context, string, bool) (sdkmetric.Reader, error) {
		return nil, errors.New("otlp failed")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "localhost:4318"})
	if err == nil {
		t.Fatalf("expected otlp error")
	}
}
