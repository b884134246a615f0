package standings

import "strings"

// Role is the meaning of a column, independent of its header text.
type Role string

const (
	RoleRank        Role = "rank"
	RoleTeam        Role = "team"
	RolePoints      Role = "points"
	RoleGamesPlayed Role = "games_played"
	RoleWins        Role = "wins"
	RoleLosses      Role = "losses"
)

// PrimaryRoles always resolve to a column.
var PrimaryRoles = []Role{RoleRank, RoleTeam, RolePoints}

// SecondaryRoles resolve only when a label matches.
var SecondaryRoles = []Role{RoleGamesPlayed, RoleWins, RoleLosses}

// RoleMap maps roles to zero-based column indices.
type RoleMap map[Role]int

// Index returns the column for role and whether it was resolved.
func (m RoleMap) Index(role Role) (int, bool) {
	idx, ok := m[role]
	return idx, ok
}

// ResolveRoles maps column labels to roles. Rank, team and points fall back to
// the first, second (or only) and last column; the match-record roles are left
// out when no label matches.
func ResolveRoles(columns []string, kw Keywords) RoleMap {
	roles := RoleMap{}
	n := len(columns)
	if n == 0 {
		return roles
	}
	labels := make([]string, n)
	for i, c := range columns {
		labels[i] = strings.ToLower(strings.TrimSpace(c))
	}

	roles[RoleRank] = firstMatch(labels, kw.Rank, nil, 0)
	roles[RoleTeam] = firstMatch(labels, kw.Team, nil, min(1, n-1))
	roles[RolePoints] = firstMatch(labels, kw.Points, nil, n-1)

	claimed := map[int]bool{
		roles[RoleRank]:   true,
		roles[RoleTeam]:   true,
		roles[RolePoints]: true,
	}
	secondary := map[Role]RoleKeywords{
		RoleGamesPlayed: kw.GamesPlayed,
		RoleWins:        kw.Wins,
		RoleLosses:      kw.Losses,
	}
	for _, role := range SecondaryRoles {
		if idx := firstMatch(labels, secondary[role], claimed, -1); idx >= 0 {
			roles[role] = idx
		}
	}
	return roles
}

func firstMatch(labels []string, kw RoleKeywords, skip map[int]bool, fallback int) int {
	for i, label := range labels {
		if skip[i] {
			continue
		}
		if kw.Match(label) {
			return i
		}
	}
	return fallback
}
