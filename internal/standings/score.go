package standings

import "strings"

// maxRowScore caps how much a long table can gain from its row count alone.
const maxRowScore = 20

// Score rates how much t looks like a standings table: one point per column label
// containing a scoring keyword, plus one per body row up to maxRowScore.
func Score(t NormalizedTable, keywords []string) int {
	score := 0
	for _, label := range t.Columns {
		label = strings.ToLower(label)
		for _, kw := range keywords {
			if strings.Contains(label, kw) {
				score++
				break
			}
		}
	}
	return score + min(t.Len(), maxRowScore)
}
