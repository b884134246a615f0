package fixture

import (
	"context"
	_ "embed"
)

// Name identifies this source in logs and metrics.
const Name = "fixture"

//go:embed page.html
var page string

// Source serves a bundled copy of a league standings page, useful for local runs and demos.
type Source struct {
	markup string
}

// New returns a fixture source backed by the embedded page.
func New() *Source {
	return &Source{markup: page}
}

// NewWithMarkup returns a fixture source that serves markup verbatim.
func NewWithMarkup(markup string) *Source {
	return &Source{markup: markup}
}

// FetchMarkup returns the bundled page.
func (s *Source) FetchMarkup(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.markup, nil
}
