package standings

import "strings"

// LocateRow returns the index of the first body row whose joined text contains name,
// compared case-insensitively. Rows are scanned in their original order and the
// first hit wins even when a later row would be a closer match.
func LocateRow(t NormalizedTable, name string) (int, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return -1, false
	}
	for i, row := range t.Rows {
		if strings.Contains(strings.ToLower(strings.Join(row, " ")), needle) {
			return i, true
		}
	}
	return -1, false
}
