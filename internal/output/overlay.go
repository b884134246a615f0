package output

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/preston-bernstein/standings-overlay/internal/standings"
)

const (
	defaultPrimary = "#305D87"
	defaultAccent  = "#F6F685"
	defaultReload  = 30 * time.Second
)

//go:embed templates/overlay.html.tmpl
var templateFS embed.FS

var overlayTmpl = template.Must(template.ParseFS(templateFS, "templates/overlay.html.tmpl"))

// Theme styles the overlay page.
type Theme struct {
	Primary     string
	Accent      string
	ReloadEvery time.Duration
}

func (t Theme) withDefaults() Theme {
	if t.Primary == "" {
		t.Primary = defaultPrimary
	}
	if t.Accent == "" {
		t.Accent = defaultAccent
	}
	if t.ReloadEvery <= 0 {
		t.ReloadEvery = defaultReload
	}
	return t
}

type overlayRow struct {
	Cells     []string
	Highlight bool
}

type overlayView struct {
	Title      string
	Primary    string
	Accent     string
	Columns    []string
	Rows       []overlayRow
	TeamNeedle string
	ReloadMS   int64
}

// encodeOverlay renders the full table as a transparent page for a browser source.
// The followed team's row is highlighted here and again by the page script.
func encodeOverlay(res standings.Result, theme Theme) ([]byte, error) {
	theme = theme.withDefaults()

	view := overlayView{
		Title:      "Classificació " + res.TeamName,
		Primary:    theme.Primary,
		Accent:     theme.Accent,
		Columns:    res.Table.Columns,
		Rows:       make([]overlayRow, len(res.Table.Rows)),
		TeamNeedle: strings.ToLower(strings.TrimSpace(res.TeamName)),
		ReloadMS:   theme.ReloadEvery.Milliseconds(),
	}
	for i, r := range res.Table.Rows {
		view.Rows[i] = overlayRow{
			Cells:     r,
			Highlight: res.Target != nil && res.Target.Row == i,
		}
	}

	var buf bytes.Buffer
	if err := overlayTmpl.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
