package output

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/standings-overlay/internal/domain"
	"github.com/preston-bernstein/standings-overlay/internal/logging"
	"github.com/preston-bernstein/standings-overlay/internal/metrics"
	"github.com/preston-bernstein/standings-overlay/internal/standings"
)

// ErrNotConfigured is returned by a nil Writer.
var ErrNotConfigured = errors.New("output writer not configured")

// Options configures a Writer.
type Options struct {
	Dir         string
	Theme       Theme
	XLSXEnabled bool
	Logger      *slog.Logger
	Recorder    *metrics.Recorder
}

// Writer renders a snapshot into the artifact set inside one directory.
type Writer struct {
	dir      string
	theme    Theme
	xlsx     bool
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// Report lists which artifacts were rewritten and which were already up to date.
type Report struct {
	Skipped   bool
	Written   []string
	Unchanged []string
}

type artifact struct {
	name   string
	render func(domain.Snapshot) ([]byte, error)
}

// NewWriter constructs a writer rooted at opts.Dir.
func NewWriter(opts Options) *Writer {
	return &Writer{
		dir:      opts.Dir,
		theme:    opts.Theme.withDefaults(),
		xlsx:     opts.XLSXEnabled,
		logger:   opts.Logger,
		recorder: opts.Recorder,
		now:      time.Now,
	}
}

// Dir exposes the output directory.
func (w *Writer) Dir() string {
	if w == nil {
		return ""
	}
	return w.dir
}

// Write renders every artifact for snap. A snapshot without a table leaves the
// previous artifacts in place. Files whose content did not change are not touched.
func (w *Writer) Write(snap domain.Snapshot) (Report, error) {
	if w == nil {
		return Report{}, ErrNotConfigured
	}
	if !snap.HasTable() {
		logging.Warn(w.logger, "no standings table, keeping previous artifacts",
			logging.FieldRunID, snap.RunID,
			logging.FieldCount, snap.Candidates,
		)
		return Report{Skipped: true}, nil
	}

	manifestPath := ArtifactPath(w.dir, ManifestFile)
	m, _ := readManifest(manifestPath)
	now := w.now().UTC()

	var report Report
	for _, a := range w.artifacts() {
		data, err := a.render(snap)
		if err != nil {
			return report, fmt.Errorf("render %s: %w", a.name, err)
		}
		written, err := writeIfChanged(ArtifactPath(w.dir, a.name), data)
		if err != nil {
			return report, fmt.Errorf("write %s: %w", a.name, err)
		}

		meta := ArtifactMeta{Size: len(data), SHA256: digest(data)}
		if written {
			meta.UpdatedAt = now
			report.Written = append(report.Written, a.name)
			w.recorder.RecordArtifactWrite(a.name)
			logging.Debug(w.logger, "artifact written", logging.FieldArtifact, a.name, logging.FieldCount, len(data))
		} else {
			meta.UpdatedAt = m.Artifacts[a.name].UpdatedAt
			if meta.UpdatedAt.IsZero() {
				meta.UpdatedAt = now
			}
			report.Unchanged = append(report.Unchanged, a.name)
		}
		m.Artifacts[a.name] = meta
	}

	m.LastRun = RunMeta{
		RunID:     snap.RunID,
		Source:    snap.Source,
		FetchedAt: snap.FetchedAt,
		Outcome:   snap.Outcome,
		Team:      snap.TeamName,
		Strategy:  snap.Strategy,
	}
	if err := writeManifest(manifestPath, m, now); err != nil {
		return report, fmt.Errorf("write %s: %w", ManifestFile, err)
	}
	return report, nil
}

func (w *Writer) artifacts() []artifact {
	list := []artifact{
		{name: CSVFile, render: func(s domain.Snapshot) ([]byte, error) { return encodeCSV(s.Table) }},
		{name: TopFile, render: func(s domain.Snapshot) ([]byte, error) { return encodeTop(s.Result), nil }},
		{name: TeamFile, render: func(s domain.Snapshot) ([]byte, error) { return encodeTeam(s.Result), nil }},
		{name: OverlayFile, render: func(s domain.Snapshot) ([]byte, error) { return encodeOverlay(s.Result, w.theme) }},
		{name: SnapshotFile, render: func(s domain.Snapshot) ([]byte, error) { return encodeResult(s.Result) }},
	}
	if w.xlsx {
		list = append(list, artifact{name: XLSXFile, render: func(s domain.Snapshot) ([]byte, error) { return encodeXLSX(s.Result, w.theme) }})
	}
	return list
}

// encodeResult stores only the derived result; run metadata lives in the manifest.
func encodeResult(res standings.Result) ([]byte, error) {
	return json.MarshalIndent(res, "", "  ")
}

func digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
