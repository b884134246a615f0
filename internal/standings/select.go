package standings

// ScoredCandidate pairs a normalized candidate with its score. Index is the
// candidate's position in the extracted sequence.
type ScoredCandidate struct {
	Index int             `json:"index"`
	Score int             `json:"score"`
	Table NormalizedTable `json:"-"`
}

// Select normalizes and scores every candidate and returns the best one. Blank
// candidates are skipped; ties go to the earliest candidate. The scored slice lists
// every non-blank candidate in input order.
func Select(tables []RawTable, keywords []string) (best ScoredCandidate, scored []ScoredCandidate, ok bool) {
	for i, raw := range tables {
		t, nonEmpty := Normalize(raw)
		if !nonEmpty {
			continue
		}
		c := ScoredCandidate{Index: i, Score: Score(t, keywords), Table: t}
		scored = append(scored, c)
		if !ok || c.Score > best.Score {
			best, ok = c, true
		}
	}
	return best, scored, ok
}
