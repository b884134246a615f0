package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/standings-overlay/internal/config"
	httpserver "github.com/preston-bernstein/standings-overlay/internal/http"
	"github.com/preston-bernstein/standings-overlay/internal/http/handlers"
	"github.com/preston-bernstein/standings-overlay/internal/logging"
	"github.com/preston-bernstein/standings-overlay/internal/metrics"
	"github.com/preston-bernstein/standings-overlay/internal/poller"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	components    Components
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured source, poller and HTTP wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	comps, err := BuildComponents(cfg, logger, recorder)
	if err != nil {
		return nil, err
	}
	return assemble(cfg, logger, recorder, comps, metricsSrv, metricsShutdown), nil
}

func assemble(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, comps Components, metricsSrv httpServer, metricsShutdown func(context.Context) error) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		components:    comps,
		httpServer:    buildHTTPServer(cfg, comps, logger, recorder),
		metricsServer: metricsSrv,
		poller:        comps.Poller,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, comps Components, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var statusFn func() poller.Status
	var admin *handlers.AdminHandler
	if comps.Poller != nil {
		statusFn = comps.Poller.Status
		if cfg.AdminToken != "" {
			admin = handlers.NewAdminHandler(comps.Poller, cfg.AdminToken, logger)
		}
	}

	handler := handlers.NewHandler(comps.Service, comps.Artifacts, logger, statusFn)
	router := httpserver.NewRouter(httpserver.RouterOptions{
		Handler:  handler,
		Admin:    admin,
		Logger:   logger,
		Recorder: recorder,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// Run starts the poller, HTTP server and metrics server, then waits for context
// cancellation or a listener failure and shuts everything down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return s.serve("http", s.httpServer) })
	if s.metricsServer != nil {
		g.Go(func() error { return s.serve("metrics", s.metricsServer) })
	}
	s.poller.Start(gctx)

	g.Go(func() error {
		<-gctx.Done()
		logging.Info(s.logger, "shutdown signal received")
		s.gracefulShutdown()
		return nil
	})

	return g.Wait()
}

func (s *Server) serve(name string, srv httpServer) error {
	logging.Info(s.logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Error(s.logger, name+" server failed", err)
		return fmt.Errorf("%s server: %w", name, err)
	}
	return nil
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
