package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/standings-overlay/internal/domain"
	"github.com/preston-bernstein/standings-overlay/internal/http/requestutil"
	"github.com/preston-bernstein/standings-overlay/internal/logging"
	"github.com/preston-bernstein/standings-overlay/internal/poller"
)

// Refresher runs one fetch-extract-write cycle on demand.
type Refresher interface {
	RunOnce(ctx context.Context) (domain.Snapshot, error)
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	refresher Refresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token disables the endpoints.
func NewAdminHandler(refresher Refresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// Refresh triggers an immediate poll. Guarded by ADMIN_TOKEN; returns 401 if missing or invalid.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if !h.authorize(r) {
		logging.Warn(logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "poller not configured", logger)
		return
	}

	snap, err := h.refresher.RunOnce(r.Context())
	if err != nil {
		logging.Warn(logger, "admin refresh failed", slog.Any("error", err))
		msg := "refresh failed"
		if errors.Is(err, poller.ErrNoTable) {
			msg = "no standings table found"
		}
		writeError(w, r, http.StatusBadGateway, msg, logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"runId":   snap.RunID,
		"outcome": snap.Outcome,
		"team":    snap.TeamLine(),
	}, logger)
	logging.Info(logger, "admin refresh complete",
		slog.String(logging.FieldRunID, snap.RunID),
		slog.String(logging.FieldOutcome, string(snap.Outcome)),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got, ok := requestutil.BearerToken(r)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
