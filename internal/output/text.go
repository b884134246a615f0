package output

import "github.com/preston-bernstein/standings-overlay/internal/standings"

// encodeTop renders one "rank - team (points)" line per leading row.
func encodeTop(res standings.Result) []byte {
	return []byte(res.Summary())
}

// encodeTeam renders the followed team's line, or "<team>: no trobat".
func encodeTeam(res standings.Result) []byte {
	return []byte(res.TeamLine() + "\n")
}
