package standings

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

var (
	errParserPanic = errors.New("table parser panicked")
	errUnbalanced  = errors.New("unbalanced table markup")
)

// strictState tracks the open table/row/cell elements while tokenizing.
type strictState struct {
	tables  []*tableBuilder
	rows    []*rowBuilder
	cells   []*cellBuilder
	section []section
	done    []RawTable
	skip    int
}

// parseStrict streams the markup through the tokenizer and rejects anything that is
// not explicitly closed: a missing </td>, </tr> or </table> aborts the strategy.
func parseStrict(markup string) ([]RawTable, error) {
	z := html.NewTokenizer(strings.NewReader(markup))
	st := &strictState{}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				if len(st.tables) > 0 {
					return nil, fmt.Errorf("%w: %d table(s) left open", errUnbalanced, len(st.tables))
				}
				return st.done, nil
			}
			return nil, z.Err()
		case html.TextToken:
			if st.skip > 0 {
				continue
			}
			if c := st.openCell(); c != nil {
				c.appendText(string(z.Text()))
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if err := st.start(tok, tt == html.SelfClosingTagToken); err != nil {
				return nil, err
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if err := st.end(string(name)); err != nil {
				return nil, err
			}
		}
	}
}

func (st *strictState) start(tok html.Token, selfClosing bool) error {
	tag := tok.Data
	if skippedElement(tag) {
		if !selfClosing {
			st.skip++
		}
		return nil
	}
	if st.skip > 0 {
		return nil
	}
	if sec, ok := sectionFor(tag); ok {
		if len(st.tables) == 0 {
			return fmt.Errorf("%w: <%s> outside table", errUnbalanced, tag)
		}
		st.section[len(st.section)-1] = sec
		return nil
	}

	switch tag {
	case "table":
		if selfClosing {
			return nil
		}
		// reserve the slot now so tables keep document order when nested
		st.tables = append(st.tables, &tableBuilder{slot: len(st.done)})
		st.done = append(st.done, RawTable{})
		st.section = append(st.section, sectionBody)
		// nested tables keep the enclosing row/cell depth intact
		st.rows = append(st.rows, nil)
		st.cells = append(st.cells, nil)
	case "tr":
		if len(st.tables) == 0 {
			return fmt.Errorf("%w: <tr> outside table", errUnbalanced)
		}
		if st.rows[len(st.rows)-1] != nil {
			return fmt.Errorf("%w: <tr> inside open row", errUnbalanced)
		}
		row := &rowBuilder{section: st.section[len(st.section)-1]}
		st.rows[len(st.rows)-1] = row
		tb := st.tables[len(st.tables)-1]
		tb.rows = append(tb.rows, row)
	case "td", "th":
		row := st.openRow()
		if row == nil {
			return fmt.Errorf("%w: <%s> outside row", errUnbalanced, tag)
		}
		if st.cells[len(st.cells)-1] != nil {
			return fmt.Errorf("%w: <%s> inside open cell", errUnbalanced, tag)
		}
		cell := &cellBuilder{header: tag == "th", colSpan: 1, rowSpan: 1}
		for _, a := range tok.Attr {
			switch a.Key {
			case "colspan":
				cell.colSpan = parseSpan(a.Val)
			case "rowspan":
				cell.rowSpan = parseSpan(a.Val)
			}
		}
		st.cells[len(st.cells)-1] = cell
		row.cells = append(row.cells, cell)
	case "br":
		if c := st.openCell(); c != nil {
			c.appendText(" ")
		}
	}
	return nil
}

func (st *strictState) end(tag string) error {
	if skippedElement(tag) {
		if st.skip > 0 {
			st.skip--
		}
		return nil
	}
	if st.skip > 0 {
		return nil
	}
	switch tag {
	case "td", "th":
		if len(st.cells) == 0 || st.cells[len(st.cells)-1] == nil {
			return fmt.Errorf("%w: stray </%s>", errUnbalanced, tag)
		}
		st.cells[len(st.cells)-1] = nil
	case "tr":
		if len(st.rows) == 0 || st.rows[len(st.rows)-1] == nil {
			return fmt.Errorf("%w: stray </tr>", errUnbalanced)
		}
		if st.cells[len(st.cells)-1] != nil {
			return fmt.Errorf("%w: </tr> with open cell", errUnbalanced)
		}
		st.rows[len(st.rows)-1] = nil
	case "thead", "tbody", "tfoot":
		if len(st.tables) == 0 {
			return fmt.Errorf("%w: stray </%s>", errUnbalanced, tag)
		}
		st.section[len(st.section)-1] = sectionBody
	case "table":
		if len(st.tables) == 0 {
			return fmt.Errorf("%w: stray </table>", errUnbalanced)
		}
		last := len(st.tables) - 1
		if st.rows[last] != nil || st.cells[last] != nil {
			return fmt.Errorf("%w: </table> with open row", errUnbalanced)
		}
		tb := st.tables[last]
		st.done[tb.slot] = tb.build()
		st.tables = st.tables[:last]
		st.section = st.section[:last]
		st.rows = st.rows[:last]
		st.cells = st.cells[:last]
	}
	return nil
}

func (st *strictState) openRow() *rowBuilder {
	if len(st.rows) == 0 {
		return nil
	}
	return st.rows[len(st.rows)-1]
}

func (st *strictState) openCell() *cellBuilder {
	if len(st.cells) == 0 {
		return nil
	}
	return st.cells[len(st.cells)-1]
}
