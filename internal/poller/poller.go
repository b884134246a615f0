package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/preston-bernstein/standings-overlay/internal/domain"
	"github.com/preston-bernstein/standings-overlay/internal/logging"
	"github.com/preston-bernstein/standings-overlay/internal/metrics"
	"github.com/preston-bernstein/standings-overlay/internal/output"
	"github.com/preston-bernstein/standings-overlay/internal/source"
	"github.com/preston-bernstein/standings-overlay/internal/standings"
)

const (
	defaultInterval = 5 * time.Minute
	// failures tolerated before the poller reports not ready
	readyFailureLimit = 3
)

// ErrNoTable is returned by RunOnce when the page held no standings table.
var ErrNoTable = errors.New("no standings table found")

// SnapshotWriter persists artifacts for a snapshot.
type SnapshotWriter interface {
	Write(snap domain.Snapshot) (output.Report, error)
}

// Publisher receives every snapshot that carries a table.
type Publisher interface {
	Replace(snap domain.Snapshot)
}

// Options wires a Poller.
type Options struct {
	Source     source.MarkupSource
	SourceName string
	Pipeline   *standings.Pipeline
	Writer     SnapshotWriter
	Publisher  Publisher
	Logger     *slog.Logger
	Recorder   *metrics.Recorder
	Interval   time.Duration
	// Schedule is a standard five-field cron expression; when set it replaces Interval.
	Schedule string
}

// Poller fetches the standings page on a schedule, runs the pipeline and writes the artifacts.
type Poller struct {
	source     source.MarkupSource
	sourceName string
	pipeline   *standings.Pipeline
	writer     SnapshotWriter
	publisher  Publisher
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration
	schedule   cron.Schedule
	now        func() time.Time
	newRunID   func() string

	ticker   *time.Ticker
	cron     *cron.Cron
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	// runMu serializes runs so a manual refresh never overlaps a scheduled one.
	runMu sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int               `json:"consecutiveFailures"`
	LastError           string            `json:"lastError,omitempty"`
	LastAttempt         time.Time         `json:"lastAttempt"`
	LastSuccess         time.Time         `json:"lastSuccess"`
	LastRunID           string            `json:"lastRunId,omitempty"`
	LastOutcome         standings.Outcome `json:"lastOutcome,omitempty"`
	Runs                int               `json:"runs"`
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailureLimit
}

// New constructs a Poller with sane defaults. It fails only on an invalid cron schedule.
func New(opts Options) (*Poller, error) {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Pipeline == nil {
		opts.Pipeline = standings.New(standings.Options{})
	}
	if opts.SourceName == "" {
		opts.SourceName = "source"
	}
	p := &Poller{
		source:     opts.Source,
		sourceName: opts.SourceName,
		pipeline:   opts.Pipeline,
		writer:     opts.Writer,
		publisher:  opts.Publisher,
		logger:     opts.Logger,
		metrics:    opts.Recorder,
		interval:   opts.Interval,
		now:        time.Now,
		newRunID:   uuid.NewString,
		done:       make(chan struct{}),
	}
	if opts.Schedule != "" {
		sched, err := cron.ParseStandard(opts.Schedule)
		if err != nil {
			return nil, fmt.Errorf("invalid poll schedule %q: %w", opts.Schedule, err)
		}
		p.schedule = sched
	}
	return p, nil
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	if p.schedule == nil {
		p.ticker = time.NewTicker(p.interval)
	} else {
		p.cron = cron.New()
		p.cron.Schedule(p.schedule, cron.FuncJob(func() { p.runScheduled(ctx) }))
	}
	p.startMu.Unlock()

	go func() {
		if p.cron != nil {
			p.logInfo("poller started", "schedule", "cron")
		} else {
			p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		}
		// Initial run to warm data on boot.
		p.runScheduled(ctx)
		if p.cron != nil && !p.stopped() {
			p.cron.Start()
		}

		var tick <-chan time.Time
		if p.ticker != nil {
			tick = p.ticker.C
		}
		for {
			select {
			case <-ctx.Done():
				p.halt()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.halt()
				p.logInfo("poller stopped")
				return
			case <-tick:
				p.runScheduled(ctx)
			}
		}
	}()
}

// Stop halts the polling loop and waits for a running cron job up to ctx's deadline.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.done)
	})
	p.startMu.Lock()
	c := p.cron
	p.startMu.Unlock()
	if c == nil {
		p.halt()
		return nil
	}
	select {
	case <-c.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Poller) stopped() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

func (p *Poller) halt() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
	if p.cron != nil {
		p.cron.Stop()
	}
}

func (p *Poller) runScheduled(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	_, _ = p.RunOnce(ctx)
}

// RunOnce performs one fetch, pipeline run and write. Runs are serialized. A page
// without a table returns ErrNoTable and leaves the previous artifacts in place.
func (p *Poller) RunOnce(ctx context.Context) (domain.Snapshot, error) {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	runID := p.newRunID()
	logger := p.logger
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldRunID, runID))
	}
	ctx = logging.WithLogger(ctx, logger)

	start := p.now()
	p.recordAttempt(start, runID)

	snap, err := p.run(ctx, runID, start, logger)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Error(logger, "poller run failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, snap.Outcome)
		return snap, err
	}

	p.recordSuccess(start, snap.Outcome)
	logging.Info(logger, "poller refreshed standings",
		logging.FieldOutcome, string(snap.Outcome),
		logging.FieldStrategy, string(snap.Strategy),
		logging.FieldCount, snap.Table.Len(),
		logging.FieldTeam, snap.TeamLine(),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return snap, nil
}

func (p *Poller) run(ctx context.Context, runID string, start time.Time, logger *slog.Logger) (domain.Snapshot, error) {
	if p.source == nil {
		return domain.Snapshot{}, source.ErrSourceUnavailable
	}
	markup, err := p.source.FetchMarkup(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("fetch %s: %w", p.sourceName, err)
	}

	res := p.pipeline.Run(markup)
	snap := domain.NewSnapshot(runID, p.sourceName, start, res)
	p.metrics.RecordRunOutcome(string(res.Outcome), res.Candidates)
	for _, c := range res.Scores {
		logging.Debug(logger, "candidate table scored", "index", c.Index, logging.FieldScore, c.Score, logging.FieldCount, c.Table.Len())
	}

	if !res.HasTable() {
		return snap, fmt.Errorf("%w among %d candidate(s)", ErrNoTable, res.Candidates)
	}
	if res.Outcome == standings.OutcomeTeamNotFound {
		logging.Warn(logger, "team not found in standings", logging.FieldTeam, res.TeamName)
	}

	if p.publisher != nil {
		p.publisher.Replace(snap)
	}
	if p.writer != nil {
		report, err := p.writer.Write(snap)
		if err != nil {
			return snap, fmt.Errorf("write artifacts: %w", err)
		}
		logging.Info(logger, "artifacts updated",
			"written", len(report.Written),
			"unchanged", len(report.Unchanged),
		)
	}
	return snap, nil
}

func (p *Poller) logInfo(msg string, args ...any) {
	logging.Info(p.logger, msg, args...)
}

func (p *Poller) recordAttempt(at time.Time, runID string) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
	p.status.LastRunID = runID
	p.status.Runs++
}

func (p *Poller) recordSuccess(at time.Time, outcome standings.Outcome) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.LastOutcome = outcome
}

func (p *Poller) recordFailure(err error, outcome standings.Outcome) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastOutcome = outcome
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
