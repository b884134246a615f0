package server

import (
	"log/slog"

	"github.com/preston-bernstein/standings-overlay/internal/config"
	"github.com/preston-bernstein/standings-overlay/internal/logging"
	"github.com/preston-bernstein/standings-overlay/internal/metrics"
	"github.com/preston-bernstein/standings-overlay/internal/source"
	"github.com/preston-bernstein/standings-overlay/internal/source/fixture"
	"github.com/preston-bernstein/standings-overlay/internal/source/httpsource"
)

// sourceFactory assembles the markup source with shared wrappers (rate limit + retry).
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics}
}

// build returns the wrapped source and the name it reports under.
func (f sourceFactory) build(cfg config.SourceConfig) (source.MarkupSource, string) {
	base, name := selectSource(cfg, f.logger)
	limited := source.NewRateLimitedSource(base, cfg.MinInterval, f.logger)
	return source.NewRetryingSource(limited, f.logger, f.metrics, name, cfg.Retries, 0), name
}

func selectSource(cfg config.SourceConfig, logger *slog.Logger) (source.MarkupSource, string) {
	switch cfg.Kind {
	case config.SourceHTTP:
		return httpsource.NewClient(httpsource.Config{
			URL:       cfg.URL,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		}), httpsource.Name
	case config.SourceFixture, "":
		return fixture.New(), fixture.Name
	default:
		logging.Warn(logger, "unknown source, falling back to fixture", slog.String(logging.FieldSource, cfg.Kind))
		return fixture.New(), fixture.Name
	}
}
