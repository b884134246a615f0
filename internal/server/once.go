package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/standings-overlay/internal/config"
	"github.com/preston-bernstein/standings-overlay/internal/domain"
	"github.com/preston-bernstein/standings-overlay/internal/metrics"
)

// RunOnce performs a single fetch-extract-write cycle without starting any server.
func RunOnce(ctx context.Context, cfg config.Config, logger *slog.Logger) (domain.Snapshot, error) {
	comps, err := BuildComponents(cfg, logger, metrics.NewRecorder())
	if err != nil {
		return domain.Snapshot{}, err
	}
	return comps.Poller.RunOnce(ctx)
}
