package output

import (
	"bytes"
	"encoding/csv"

	"github.com/preston-bernstein/standings-overlay/internal/standings"
)

// utf8BOM lets spreadsheet tools detect the encoding of the CSV.
const utf8BOM = "\ufeff"

// encodeCSV renders the header row and every body row.
func encodeCSV(t standings.NormalizedTable) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
