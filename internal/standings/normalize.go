package standings

import (
	"strconv"
	"strings"
)

// DefaultColumnLabel names a column whose header fragments are all placeholders.
const DefaultColumnLabel = "col"

// Normalize flattens the header of t into one label per column and drops body rows
// with no content. It returns false when nothing is left of the body.
func Normalize(t RawTable) (NormalizedTable, bool) {
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		if blankRow(r) {
			continue
		}
		rows = append(rows, r)
	}

	grid := headerGrid(t.Header)
	width := 0
	if len(grid) > 0 {
		width = len(grid[0])
	}
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	if len(rows) == 0 || width == 0 {
		return NormalizedTable{}, false
	}

	out := NormalizedTable{
		Columns: make([]string, width),
		Rows:    make([][]string, len(rows)),
	}
	for col := 0; col < width; col++ {
		out.Columns[col] = columnLabel(grid, col, t.IsHierarchical())
	}
	for i, r := range rows {
		out.Rows[i] = fitRow(r, width)
	}
	return out, true
}

// headerSlot is one position in the expanded header grid.
type headerSlot struct {
	text    string
	covered bool // filled by a rowspan from an upper level
	set     bool
}

// headerGrid expands colspan/rowspan so every header level has one slot per column.
func headerGrid(header [][]HeaderCell) [][]headerSlot {
	if len(header) == 0 {
		return nil
	}
	grid := make([][]headerSlot, len(header))
	for level, cells := range header {
		col := 0
		for _, cell := range cells {
			for col < len(grid[level]) && grid[level][col].set {
				col++
			}
			span := max(cell.ColSpan, 1)
			down := max(cell.RowSpan, 1)
			for dr := 0; dr < down && level+dr < len(grid); dr++ {
				for dc := 0; dc < span; dc++ {
					grid[level+dr] = growSlots(grid[level+dr], col+dc+1)
					grid[level+dr][col+dc] = headerSlot{text: cell.Text, covered: dr > 0, set: true}
				}
			}
			col += span
		}
	}
	width := 0
	for _, row := range grid {
		width = max(width, len(row))
	}
	for i := range grid {
		grid[i] = growSlots(grid[i], width)
	}
	return grid
}

func growSlots(row []headerSlot, n int) []headerSlot {
	for len(row) < n {
		row = append(row, headerSlot{})
	}
	return row
}

func columnLabel(grid [][]headerSlot, col int, hierarchical bool) string {
	if len(grid) == 0 || col >= len(grid[0]) {
		if hierarchical {
			return DefaultColumnLabel
		}
		// pandas labels columns by position when there is no header row
		return strconv.Itoa(col)
	}
	if !hierarchical {
		return strings.TrimSpace(grid[0][col].text)
	}

	parts := make([]string, 0, len(grid))
	for level := range grid {
		slot := grid[level][col]
		if slot.covered || isPlaceholder(slot.text) {
			continue
		}
		parts = append(parts, strings.TrimSpace(slot.text))
	}
	label := strings.TrimSpace(strings.Join(parts, " "))
	if label == "" {
		return DefaultColumnLabel
	}
	return label
}

// isPlaceholder reports header fragments that carry no name: blanks, "Unnamed: n"
// markers and bare positional indices.
func isPlaceholder(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	if strings.HasPrefix(strings.ToLower(s), "unnamed") {
		return true
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

func blankRow(r []string) bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func fitRow(r []string, width int) []string {
	out := make([]string, width)
	copy(out, r)
	return out
}
