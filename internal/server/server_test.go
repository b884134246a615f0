package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/preston-bernstein/standings-overlay/internal/config"
	"github.com/preston-bernstein/standings-overlay/internal/metrics"
	"github.com/preston-bernstein/standings-overlay/internal/output"
	"github.com/preston-bernstein/standings-overlay/internal/poller"
	"github.com/preston-bernstein/standings-overlay/internal/standings"
	"github.com/preston-bernstein/standings-overlay/internal/teststubs"
	"github.com/preston-bernstein/standings-overlay/internal/testutil"
)

type stubPoller struct {
	startCalls int
	stopCalls  int
	err        error
	status     poller.Status
}

func (p *stubPoller) Start(ctx context.Context) {
	_ = ctx
	p.startCalls++
}

func (p *stubPoller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopCalls++
	return p.err
}

func (p *stubPoller) Status() poller.Status {
	return p.status
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:         "0",
		PollInterval: time.Hour,
		AdminToken:   "secret",
		Source:       config.SourceConfig{Kind: config.SourceFixture},
		Standings:    config.StandingsConfig{TeamName: "CV Sant Just", TopN: 3},
		Output:       config.OutputConfig{Dir: t.TempDir()},
		Metrics:      config.MetricsConfig{Enabled: false},
	}
}

func TestServerServesStandingsAfterPoll(t *testing.T) {
	cfg := testConfig(t)
	src := &teststubs.StubSource{Markup: testutil.StandingsPage(testutil.DefaultRows()...)}
	comps, err := buildComponentsWithSource(cfg, nil, metrics.NewRecorder(), src, "stub")
	if err != nil {
		t.Fatalf("build components: %v", err)
	}
	srv := assemble(cfg, nil, metrics.NewRecorder(), comps, nil, nil)

	if _, err := comps.Poller.RunOnce(context.Background()); err != nil {
		t.Fatalf("run once: %v", err)
	}

	router := srv.Handler()
	for _, path := range []string{"/health", "/ready", "/standings", "/standings/team", "/overlay"} {
		testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, path, nil), http.StatusOK)
	}
	rr := testutil.ServeWithToken(router, http.MethodPost, "/admin/refresh", "secret")
	testutil.AssertStatus(t, rr, http.StatusOK)
	if src.Calls.Load() != 2 {
		t.Fatalf("expected admin refresh to fetch again, got %d calls", src.Calls.Load())
	}
}

func TestServerReadyFailsBeforeFirstPoll(t *testing.T) {
	cfg := testConfig(t)
	comps, err := buildComponentsWithSource(cfg, nil, nil, testutil.ErrSource{Err: errors.New("down")}, "stub")
	if err != nil {
		t.Fatalf("build components: %v", err)
	}
	srv := assemble(cfg, nil, nil, comps, nil, nil)
	_, _ = comps.Poller.RunOnce(context.Background())

	testutil.AssertStatus(t, testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil), http.StatusServiceUnavailable)
	testutil.AssertStatus(t, testutil.Serve(srv.Handler(), http.MethodGet, "/standings", nil), http.StatusServiceUnavailable)
}

func TestAdminRouteOnlyWithToken(t *testing.T) {
	cfg := testConfig(t)
	cfg.AdminToken = ""
	srv, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	rr := testutil.ServeWithToken(srv.Handler(), http.MethodPost, "/admin/refresh", "secret")
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestNewRejectsInvalidSchedule(t *testing.T) {
	cfg := testConfig(t)
	cfg.PollSchedule = "every now and then"
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected invalid schedule error")
	}
}

func TestSelectSource(t *testing.T) {
	cases := map[string]string{
		config.SourceHTTP:    "http",
		config.SourceFixture: "fixture",
		"":                   "fixture",
		"ftp":                "fixture",
	}
	for kind, want := range cases {
		src, name := selectSource(config.SourceConfig{Kind: kind, URL: "http://example.com"}, nil)
		if src == nil || name != want {
			t.Fatalf("kind %q: expected %s source, got %q", kind, want, name)
		}
	}
}

func TestSourceFactoryWrapsFixture(t *testing.T) {
	src, name := newSourceFactory(nil, metrics.NewRecorder()).build(config.SourceConfig{Kind: config.SourceFixture, Retries: 1})
	if name != "fixture" {
		t.Fatalf("unexpected name %q", name)
	}
	markup, err := src.FetchMarkup(context.Background())
	if err != nil || markup == "" {
		t.Fatalf("expected fixture markup, got %v", err)
	}
}

func TestRunOnceWritesArtifacts(t *testing.T) {
	cfg := testConfig(t)
	snap, err := RunOnce(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("run once: %v", err)
	}
	if snap.Outcome != standings.OutcomeOK {
		t.Fatalf("expected ok outcome, got %s", snap.Outcome)
	}
	for _, name := range []string{output.CSVFile, output.TopFile, output.TeamFile, output.OverlayFile, output.SnapshotFile, output.ManifestFile} {
		if _, err := os.Stat(filepath.Join(cfg.Output.Dir, name)); err != nil {
			t.Fatalf("expected %s written: %v", name, err)
		}
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &stubPoller{}
	httpSrv := &testutil.FakeListener{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.stopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.stopCalls)
	}
	if httpSrv.Shutdowns() != 1 {
		t.Fatalf("expected listener Shutdown to be called once, got %d", httpSrv.Shutdowns())
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &stubPoller{}
	blocking := &testutil.FakeListener{Hold: make(chan struct{})}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, blocking, p)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.Shutdowns() != 1 || p.stopCalls != 1 {
		t.Fatalf("expected shutdown and stop once, got %d/%d", blocking.Shutdowns(), p.stopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	p := &stubPoller{err: errors.New("stop failure")}
	httpSrv := &testutil.FakeListener{ShutdownErr: errors.New("already closed")}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.stopCalls != 1 || httpSrv.Shutdowns() != 1 {
		t.Fatalf("expected stop and shutdown despite error")
	}
}

func TestRunReturnsListenError(t *testing.T) {
	plr := &stubPoller{}
	httpSrv := &testutil.FakeListener{ListenErr: errors.New("address already in use")}
	srv := newServerWithDeps(config.Config{}, nil, httpSrv, plr)

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background()) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected listen error")
		}
	case <-time.After(time.Second):
		t.Fatal("run did not return after listen failure")
	}
	if plr.stopCalls != 1 || httpSrv.Shutdowns() != 1 {
		t.Fatalf("expected components stopped, stop=%d shutdown=%d", plr.stopCalls, httpSrv.Shutdowns())
	}
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &stubPoller{}
	httpSrv := &testutil.FakeListener{}
	metricsSrv := &testutil.FakeListener{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, plr)
	srv.metricsServer = metricsSrv
	stopped := false
	srv.metricsStop = func(context.Context) error {
		stopped = true
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean run, got %v", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.startCalls != 1 || plr.stopCalls != 1 {
		t.Fatalf("expected poller started and stopped once, got %d/%d", plr.startCalls, plr.stopCalls)
	}
	if httpSrv.Listens() != 1 || metricsSrv.Listens() != 1 {
		t.Fatalf("expected both listeners served, got %d/%d", httpSrv.Listens(), metricsSrv.Listens())
	}
	if httpSrv.Shutdowns() != 1 || metricsSrv.Shutdowns() != 1 || !stopped {
		t.Fatalf("expected servers and telemetry shut down")
	}
}

func TestComponentsWriteIntoArtifactStore(t *testing.T) {
	cfg := testConfig(t)
	src := testutil.StaticSource{Markup: testutil.StandingsPage(testutil.DefaultRows()...)}
	comps, err := buildComponentsWithSource(cfg, nil, nil, src, "static")
	if err != nil {
		t.Fatalf("build components: %v", err)
	}
	if _, err := comps.Poller.RunOnce(context.Background()); err != nil {
		t.Fatalf("run once: %v", err)
	}

	path, err := comps.Artifacts.ArtifactFile(output.TopFile)
	if err != nil {
		t.Fatalf("artifact file: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read top file: %v", err)
	}
	want := "1 - CV Alpha (20)\n2 - CV Sant Just (15)\n3 - CV Gamma (12)"
	if string(raw) != want {
		t.Fatalf("top file = %q, want %q", raw, want)
	}
}
