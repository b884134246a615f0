package standings

import (
	"strconv"
	"strings"
)

// Strategy names the parser that produced a set of candidate tables.
type Strategy string

const (
	StrategyNone    Strategy = "none"
	StrategyStrict  Strategy = "strict"
	StrategyLenient Strategy = "lenient"
)

const maxSpan = 1000

type parseFunc func(markup string) ([]RawTable, error)

type strategy struct {
	name  Strategy
	parse parseFunc
}

// strategies run in order; a later one only runs when every earlier one failed or
// found nothing.
var strategies = []strategy{
	{name: StrategyStrict, parse: parseStrict},
	{name: StrategyLenient, parse: parseLenient},
}

// Extract returns every table found in markup. Unparseable markup yields an empty
// slice, never an error.
func Extract(markup string) []RawTable {
	tables, _ := ExtractWithStrategy(markup)
	return tables
}

// ExtractWithStrategy is Extract that also reports which parser produced the tables.
func ExtractWithStrategy(markup string) ([]RawTable, Strategy) {
	if strings.TrimSpace(markup) == "" {
		return nil, StrategyNone
	}
	for _, s := range strategies {
		tables, err := safeParse(s.parse, markup)
		if err != nil || len(tables) == 0 {
			continue
		}
		return tables, s.name
	}
	return nil, StrategyNone
}

// safeParse turns a parser panic into an error so a broken page never takes the
// process down.
func safeParse(fn parseFunc, markup string) (tables []RawTable, err error) {
	defer func() {
		if r := recover(); r != nil {
			tables = nil
			err = errParserPanic
		}
	}()
	return fn(markup)
}

type section int

const (
	sectionBody section = iota
	sectionHead
	sectionFoot
)

type cellBuilder struct {
	text    strings.Builder
	header  bool
	colSpan int
	rowSpan int
}

func (c *cellBuilder) appendText(s string) {
	c.text.WriteString(s)
}

func (c *cellBuilder) value() string {
	return collapseSpace(c.text.String())
}

type rowBuilder struct {
	section section
	cells   []*cellBuilder
}

func (r *rowBuilder) allHeader() bool {
	if len(r.cells) == 0 {
		return false
	}
	for _, c := range r.cells {
		if !c.header {
			return false
		}
	}
	return true
}

// tableBuilder accumulates rows for one <table> element, independent of parser.
type tableBuilder struct {
	slot int
	rows []*rowBuilder
}

// build assigns header rows the way pandas.read_html does: <thead> rows first, else
// the leading rows made only of <th> cells. Footer rows are appended to the body.
func (b *tableBuilder) build() RawTable {
	var head, body, foot []*rowBuilder
	for _, r := range b.rows {
		if len(r.cells) == 0 {
			continue
		}
		switch r.section {
		case sectionHead:
			head = append(head, r)
		case sectionFoot:
			foot = append(foot, r)
		default:
			body = append(body, r)
		}
	}
	if len(head) == 0 {
		for len(body) > 0 && body[0].allHeader() {
			head = append(head, body[0])
			body = body[1:]
		}
	}
	body = append(body, foot...)

	out := RawTable{}
	for _, r := range head {
		row := make([]HeaderCell, 0, len(r.cells))
		for _, c := range r.cells {
			row = append(row, HeaderCell{Text: c.value(), ColSpan: c.colSpan, RowSpan: c.rowSpan})
		}
		out.Header = append(out.Header, row)
	}
	var carry []carriedCell
	for _, r := range body {
		row := make([]string, 0, len(r.cells))
		for _, c := range r.cells {
			row, carry = fillCarried(row, carry)
			v := c.value()
			for i := 0; i < c.colSpan; i++ {
				col := len(row)
				row = append(row, v)
				if c.rowSpan > 1 {
					carry = growCarry(carry, col+1)
					carry[col] = carriedCell{text: v, left: c.rowSpan - 1}
				}
			}
		}
		row, carry = fillCarried(row, carry)
		// rowspans reaching past the cells of a short row still land in their column
		for col := len(row); col < len(carry); col++ {
			if carry[col].left == 0 {
				continue
			}
			for len(row) < col {
				row = append(row, "")
			}
			row = append(row, carry[col].text)
			carry[col].left--
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// carriedCell is a body value copied down into later rows by its rowspan, the way
// pandas.read_html fills merged cells.
type carriedCell struct {
	text string
	left int
}

// fillCarried appends carried values for the columns starting at the end of row.
func fillCarried(row []string, carry []carriedCell) ([]string, []carriedCell) {
	for col := len(row); col < len(carry) && carry[col].left > 0; col++ {
		row = append(row, carry[col].text)
		carry[col].left--
	}
	return row, carry
}

func growCarry(carry []carriedCell, n int) []carriedCell {
	for len(carry) < n {
		carry = append(carry, carriedCell{})
	}
	return carry
}

func parseSpan(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	if n > maxSpan {
		return maxSpan
	}
	return n
}

func sectionFor(tag string) (section, bool) {
	switch tag {
	case "thead":
		return sectionHead, true
	case "tbody":
		return sectionBody, true
	case "tfoot":
		return sectionFoot, true
	}
	return sectionBody, false
}

// skippedElement reports elements whose text never belongs to a cell.
func skippedElement(tag string) bool {
	switch tag {
	case "script", "style", "template", "noscript":
		return true
	}
	return false
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
