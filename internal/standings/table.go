// Package standings locates a league standings table inside arbitrary page markup
// and resolves which of its columns hold rank, team, points and the match record.
package standings

// HeaderCell is one header cell as it appeared in the markup.
type HeaderCell struct {
	Text    string
	ColSpan int
	RowSpan int
}

// RawTable is a table as extracted from markup, before its header is flattened.
// Header holds zero or more header rows; a table with two or more is hierarchical.
type RawTable struct {
	Header [][]HeaderCell
	Rows   [][]string
}

// IsHierarchical reports whether the header spans more than one row.
func (t RawTable) IsHierarchical() bool {
	return len(t.Header) > 1
}

// NormalizedTable has exactly one row of column labels and body rows that all
// have len(Columns) cells.
type NormalizedTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Len returns the number of body rows.
func (t NormalizedTable) Len() int {
	return len(t.Rows)
}

// Width returns the number of columns.
func (t NormalizedTable) Width() int {
	return len(t.Columns)
}

// Empty reports whether the table has no body rows or no columns.
func (t NormalizedTable) Empty() bool {
	return len(t.Rows) == 0 || len(t.Columns) == 0
}

// Cell returns the trimmed value at row/col, or "" when out of range.
func (t NormalizedTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
