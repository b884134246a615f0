package server

import (
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/standings-overlay/internal/config"
	"github.com/preston-bernstein/standings-overlay/internal/domain"
	"github.com/preston-bernstein/standings-overlay/internal/metrics"
	"github.com/preston-bernstein/standings-overlay/internal/output"
	"github.com/preston-bernstein/standings-overlay/internal/poller"
	"github.com/preston-bernstein/standings-overlay/internal/source"
	"github.com/preston-bernstein/standings-overlay/internal/standings"
	"github.com/preston-bernstein/standings-overlay/internal/store"
)

// Components is everything a poll run touches, shared by the long-running server and one-shot runs.
type Components struct {
	Source     source.MarkupSource
	SourceName string
	Pipeline   *standings.Pipeline
	Writer     *output.Writer
	Artifacts  *output.FSStore
	Service    *domain.Service
	Poller     *poller.Poller
}

// BuildComponents wires source, pipeline, writer and poller from cfg.
func BuildComponents(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (Components, error) {
	src, name := newSourceFactory(logger, recorder).build(cfg.Source)
	return buildComponentsWithSource(cfg, logger, recorder, src, name)
}

func buildComponentsWithSource(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, src source.MarkupSource, name string) (Components, error) {
	pipeline := standings.New(standings.Options{
		TeamName: cfg.Standings.TeamName,
		TopN:     cfg.Standings.TopN,
	})
	writer := output.NewWriter(output.Options{
		Dir: cfg.Output.Dir,
		Theme: output.Theme{
			Primary:     cfg.Output.PrimaryColor,
			Accent:      cfg.Output.AccentColor,
			ReloadEvery: cfg.Output.ReloadEvery,
		},
		XLSXEnabled: cfg.Output.XLSXEnabled,
		Logger:      logger,
		Recorder:    recorder,
	})
	artifacts := output.NewFSStore(cfg.Output.Dir)
	svc := domain.NewService(store.NewMemoryStore(), artifacts)

	plr, err := poller.New(poller.Options{
		Source:     src,
		SourceName: name,
		Pipeline:   pipeline,
		Writer:     writer,
		Publisher:  svc,
		Logger:     logger,
		Recorder:   recorder,
		Interval:   cfg.PollInterval,
		Schedule:   cfg.PollSchedule,
	})
	if err != nil {
		return Components{}, fmt.Errorf("build poller: %w", err)
	}

	return Components{
		Source:     src,
		SourceName: name,
		Pipeline:   pipeline,
		Writer:     writer,
		Artifacts:  artifacts,
		Service:    svc,
		Poller:     plr,
	}, nil
}
