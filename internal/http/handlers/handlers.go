package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/standings-overlay/internal/domain"
	"github.com/preston-bernstein/standings-overlay/internal/logging"
	"github.com/preston-bernstein/standings-overlay/internal/output"
	"github.com/preston-bernstein/standings-overlay/internal/poller"
)

// ArtifactStore resolves published artifacts to files on disk.
type ArtifactStore interface {
	ArtifactFile(name string) (string, error)
}

// Handler wires HTTP routes to the standings service.
type Handler struct {
	svc       *domain.Service
	artifacts ArtifactStore
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler. artifacts and statusFn may be nil.
func NewHandler(svc *domain.Service, artifacts ArtifactStore, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:       svc,
		artifacts: artifacts,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the poller has produced standings recently.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ready", "poller": status}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Standings returns the latest snapshot, loading it from disk after a restart.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if h.svc == nil {
		writeError(w, r, http.StatusServiceUnavailable, "standings not available yet", logger)
		return
	}
	snap, ok := h.svc.Latest()
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "standings not available yet", logger)
		return
	}
	logging.Debug(logger, "served standings",
		logging.FieldRunID, snap.RunID,
		logging.FieldCount, snap.Table.Len(),
	)
	writeJSON(w, http.StatusOK, snap, logger)
}

// Team returns the followed team's line from the latest snapshot.
func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if h.svc == nil {
		writeError(w, r, http.StatusServiceUnavailable, "standings not available yet", logger)
		return
	}
	status, ok := h.svc.Team()
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "standings not available yet", logger)
		return
	}
	writeJSON(w, http.StatusOK, status, logger)
}

// Overlay serves the generated HTML overlay.
func (h *Handler) Overlay(w http.ResponseWriter, r *http.Request) {
	h.serveArtifact(w, r, output.OverlayFile)
}

// Artifact serves one published artifact by file name.
func (h *Handler) Artifact(w http.ResponseWriter, r *http.Request) {
	h.serveArtifact(w, r, chi.URLParam(r, "name"))
}

func (h *Handler) serveArtifact(w http.ResponseWriter, r *http.Request, name string) {
	logger := loggerFromContext(r, h.logger)
	if h.artifacts == nil {
		writeError(w, r, http.StatusServiceUnavailable, "artifact store not configured", logger)
		return
	}
	path, err := h.artifacts.ArtifactFile(name)
	switch {
	case errors.Is(err, output.ErrUnknownArtifact):
		writeError(w, r, http.StatusNotFound, "unknown artifact", logger)
		return
	case err != nil:
		logging.Debug(logger, "artifact not available", logging.FieldArtifact, name, "error", err)
		writeError(w, r, http.StatusNotFound, "artifact not written yet", logger)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	http.ServeFile(w, r, path)
}
