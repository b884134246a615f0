package standings

import (
	"fmt"
	"strings"
)

// Standing is one body row read through a RoleMap. The match-record fields are nil
// when their role did not resolve.
type Standing struct {
	Row         int      `json:"row"`
	Rank        string   `json:"rank"`
	Team        string   `json:"team"`
	Points      string   `json:"points"`
	GamesPlayed *string  `json:"gamesPlayed,omitempty"`
	Wins        *string  `json:"wins,omitempty"`
	Losses      *string  `json:"losses,omitempty"`
	Cells       []string `json:"cells"`
}

// NewStanding projects row i of t through roles.
func NewStanding(t NormalizedTable, roles RoleMap, i int) Standing {
	s := Standing{Row: i}
	if i >= 0 && i < len(t.Rows) {
		s.Cells = append([]string(nil), t.Rows[i]...)
	}
	s.Rank = roleValue(t, roles, RoleRank, i)
	s.Team = roleValue(t, roles, RoleTeam, i)
	s.Points = roleValue(t, roles, RolePoints, i)
	s.GamesPlayed = optionalRoleValue(t, roles, RoleGamesPlayed, i)
	s.Wins = optionalRoleValue(t, roles, RoleWins, i)
	s.Losses = optionalRoleValue(t, roles, RoleLosses, i)
	return s
}

// Line renders the standing as "rank - team (points)".
func (s Standing) Line() string {
	return fmt.Sprintf("%s - %s (%s)", s.Rank, s.Team, s.Points)
}

func roleValue(t NormalizedTable, roles RoleMap, role Role, row int) string {
	col, ok := roles.Index(role)
	if !ok {
		return ""
	}
	return strings.TrimSpace(t.Cell(row, col))
}

func optionalRoleValue(t NormalizedTable, roles RoleMap, role Role, row int) *string {
	if _, ok := roles.Index(role); !ok {
		return nil
	}
	v := roleValue(t, roles, role, row)
	return &v
}
