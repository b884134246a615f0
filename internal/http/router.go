package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/standings-overlay/internal/http/handlers"
	"github.com/preston-bernstein/standings-overlay/internal/http/middleware"
	"github.com/preston-bernstein/standings-overlay/internal/metrics"
)

// RouterOptions holds what the router needs. Admin may be nil.
type RouterOptions struct {
	Handler  *handlers.Handler
	Admin    *handlers.AdminHandler
	Logger   *slog.Logger
	Recorder *metrics.Recorder
}

// NewRouter registers HTTP routes on a chi mux.
func NewRouter(opts RouterOptions) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(opts.Logger, opts.Recorder))
	r.NotFound(handlers.NotFound(opts.Logger))
	r.MethodNotAllowed(handlers.MethodNotAllowed(opts.Logger))

	h := opts.Handler
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/standings", h.Standings)
	r.Get("/standings/team", h.Team)
	r.Get("/overlay", h.Overlay)
	r.Get("/artifacts/{name}", h.Artifact)

	if opts.Admin != nil {
		r.Post("/admin/refresh", opts.Admin.Refresh)
	}
	return r
}
