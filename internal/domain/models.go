package domain

import (
	"time"

	"github.com/preston-bernstein/standings-overlay/internal/standings"
)

// Snapshot is one pipeline run together with where and when its page came from.
// The Result fields are inlined in JSON.
type Snapshot struct {
	RunID     string    `json:"runId"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetchedAt"`
	standings.Result
}

// NewSnapshot stamps res with run metadata.
func NewSnapshot(runID, source string, fetchedAt time.Time, res standings.Result) Snapshot {
	return Snapshot{
		RunID:     runID,
		Source:    source,
		FetchedAt: fetchedAt.UTC(),
		Result:    res,
	}
}

// TeamStatus is the payload returned by /standings/team.
type TeamStatus struct {
	Team      string              `json:"team"`
	Found     bool                `json:"found"`
	Line      string              `json:"line"`
	Standing  *standings.Standing `json:"standing,omitempty"`
	FetchedAt time.Time           `json:"fetchedAt"`
}

// NewTeamStatus projects the followed team out of a snapshot.
func NewTeamStatus(snap Snapshot) TeamStatus {
	return TeamStatus{
		Team:      snap.TeamName,
		Found:     snap.TeamFound(),
		Line:      snap.TeamLine(),
		Standing:  snap.Target,
		FetchedAt: snap.FetchedAt,
	}
}
