package testutil

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/standings-overlay/internal/domain"
	"github.com/preston-bernstein/standings-overlay/internal/standings"
)

// Row is one line of a generated standings table.
type Row struct {
	Team   string
	Points int
}

// StandingsPage renders a page with a decorative layout table followed by a
// classification table holding rows in the given order.
func StandingsPage(rows ...Row) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	b.WriteString(`<table><tr><td>Inici</td><td>Competicions</td></tr></table>`)
	b.WriteString("<table><thead><tr><th>Pos</th><th>Equipo</th><th>PJ</th><th>PG</th><th>PP</th><th>Puntos</th></tr></thead><tbody>")
	for i, r := range rows {
		fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>10</td><td>5</td><td>5</td><td>%d</td></tr>", i+1, r.Team, r.Points)
	}
	b.WriteString("</tbody></table></body></html>")
	return b.String()
}

// DefaultRows is a four-team table with "CV Sant Just" in second place.
func DefaultRows() []Row {
	return []Row{
		{Team: "CV Alpha", Points: 20},
		{Team: "CV Sant Just", Points: 15},
		{Team: "CV Gamma", Points: 12},
		{Team: "CV Delta", Points: 3},
	}
}

// SampleSnapshot runs the pipeline over a default page and wraps the result.
func SampleSnapshot(runID string, at time.Time) domain.Snapshot {
	res := standings.New(standings.Options{TeamName: "CV Sant Just"}).Run(StandingsPage(DefaultRows()...))
	return domain.NewSnapshot(runID, "test", at, res)
}

// StaticSource always returns Markup.
type StaticSource struct {
	Markup string
}

func (s StaticSource) FetchMarkup(ctx context.Context) (string, error) {
	_ = ctx
	return s.Markup, nil
}

// ErrSource always returns Err.
type ErrSource struct {
	Err error
}

func (s ErrSource) FetchMarkup(ctx context.Context) (string, error) {
	_ = ctx
	return "", s.Err
}
