package standings

import (
	"fmt"
	"strings"
)

const defaultTopN = 3

// Outcome classifies how a pipeline run ended. None of them is an error.
type Outcome string

const (
	OutcomeOK           Outcome = "ok"
	OutcomeNoTable      Outcome = "no_table"
	OutcomeTeamNotFound Outcome = "team_not_found"
)

// Options is the parameter bundle for one pipeline.
type Options struct {
	TeamName string
	TopN     int
	Keywords Keywords
}

// Result is everything a run derives from one page of markup.
type Result struct {
	Outcome    Outcome           `json:"outcome"`
	Strategy   Strategy          `json:"strategy"`
	TeamName   string            `json:"teamName"`
	Candidates int               `json:"candidates"`
	Scores     []ScoredCandidate `json:"scores,omitempty"`
	Selected   int               `json:"selected"`
	Table      NormalizedTable   `json:"table"`
	Roles      RoleMap           `json:"roles,omitempty"`
	Top        []Standing        `json:"top,omitempty"`
	Target     *Standing         `json:"target,omitempty"`
}

// HasTable reports whether a standings table was selected.
func (r Result) HasTable() bool {
	return r.Outcome != OutcomeNoTable
}

// TeamFound reports whether the target row was located.
func (r Result) TeamFound() bool {
	return r.Target != nil
}

// TeamLine renders the target as "rank - team (points)", or "<team>: no trobat".
func (r Result) TeamLine() string {
	if r.Target == nil {
		return fmt.Sprintf("%s: no trobat", r.TeamName)
	}
	return r.Target.Line()
}

// Summary renders one "rank - team (points)" line per top row, newline separated.
func (r Result) Summary() string {
	lines := make([]string, 0, len(r.Top))
	for _, s := range r.Top {
		lines = append(lines, s.Line())
	}
	return strings.Join(lines, "\n")
}

// Pipeline turns page markup into a Result.
type Pipeline struct {
	opts Options
}

// New constructs a Pipeline, filling in default top-N size and any unset keyword set.
func New(opts Options) *Pipeline {
	if opts.TopN <= 0 {
		opts.TopN = defaultTopN
	}
	opts.Keywords = opts.Keywords.WithDefaults()
	return &Pipeline{opts: opts}
}

// Options returns the effective options.
func (p *Pipeline) Options() Options {
	return p.opts
}

// Run extracts, selects and reads the standings table out of markup. It never
// fails: unparseable markup or a page without tables ends in OutcomeNoTable, and a
// missing team ends in OutcomeTeamNotFound with the table still populated.
func (p *Pipeline) Run(markup string) Result {
	res := Result{
		Outcome:  OutcomeNoTable,
		TeamName: p.opts.TeamName,
		Selected: -1,
	}

	tables, strategy := ExtractWithStrategy(markup)
	res.Strategy = strategy
	res.Candidates = len(tables)

	best, scored, ok := Select(tables, p.opts.Keywords.Score)
	res.Scores = scored
	if !ok {
		return res
	}
	res.Selected = best.Index
	res.Table = best.Table

	// resolved once and shared by the top-N rows and the target row
	res.Roles = ResolveRoles(best.Table.Columns, p.opts.Keywords)

	n := min(p.opts.TopN, best.Table.Len())
	res.Top = make([]Standing, 0, n)
	for i := 0; i < n; i++ {
		res.Top = append(res.Top, NewStanding(best.Table, res.Roles, i))
	}

	if idx, found := LocateRow(best.Table, p.opts.TeamName); found {
		target := NewStanding(best.Table, res.Roles, idx)
		res.Target = &target
		res.Outcome = OutcomeOK
	} else {
		res.Outcome = OutcomeTeamNotFound
	}
	return res
}
