package standings

import (
	"strings"
	"unicode"
)

// RoleKeywords describes how a column label is recognised for one role.
// Labels are compared lower-cased.
type RoleKeywords struct {
	// Contains matches when the label contains the keyword anywhere.
	Contains []string
	// Tokens matches when one of the label's words equals the keyword.
	Tokens []string
	// Prefixes matches when one of the label's words starts with the keyword.
	Prefixes []string
	// Exact matches when the whole trimmed label equals the keyword.
	Exact []string
}

// Match reports whether a lower-cased label satisfies any of the rules.
func (k RoleKeywords) Match(label string) bool {
	for _, kw := range k.Exact {
		if label == kw {
			return true
		}
	}
	for _, kw := range k.Contains {
		if strings.Contains(label, kw) {
			return true
		}
	}
	if len(k.Tokens) == 0 && len(k.Prefixes) == 0 {
		return false
	}
	for _, word := range words(label) {
		for _, kw := range k.Tokens {
			if word == kw {
				return true
			}
		}
		for _, kw := range k.Prefixes {
			if strings.HasPrefix(word, kw) {
				return true
			}
		}
	}
	return false
}

// IsZero reports whether no rule is set.
func (k RoleKeywords) IsZero() bool {
	return len(k.Contains) == 0 && len(k.Tokens) == 0 && len(k.Prefixes) == 0 && len(k.Exact) == 0
}

// Keywords bundles the scoring keywords and the per-role recognisers.
type Keywords struct {
	Score       []string
	Rank        RoleKeywords
	Team        RoleKeywords
	Points      RoleKeywords
	GamesPlayed RoleKeywords
	Wins        RoleKeywords
	Losses      RoleKeywords
}

// DefaultKeywords returns the Catalan/Spanish/English keyword sets.
func DefaultKeywords() Keywords {
	return Keywords{
		Score: []string{"pos", "rank", "equipo", "equip", "team", "puntos", "points", "pj", "jug", "gan", "perd", "sets"},
		Rank: RoleKeywords{
			Prefixes: []string{"pos"},
			Tokens:   []string{"rank"},
			Exact:    []string{"#"},
		},
		Team: RoleKeywords{
			Contains: []string{"equipo", "equip", "team", "club"},
		},
		Points: RoleKeywords{
			Contains: []string{"puntos", "points", "punts", "pts", "pt"},
		},
		GamesPlayed: RoleKeywords{
			Contains: []string{"jugados", "jugats", "played"},
			Tokens:   []string{"pj", "j", "gp", "pld", "mp"},
		},
		Wins: RoleKeywords{
			Contains: []string{"ganados", "guanyats", "won", "wins"},
			Tokens:   []string{"g", "w", "pg"},
		},
		Losses: RoleKeywords{
			Contains: []string{"perdidos", "perduts", "lost", "losses"},
			Tokens:   []string{"p", "l", "pp"},
		},
	}
}

// WithDefaults fills every unset field from DefaultKeywords and keeps the rest.
func (k Keywords) WithDefaults() Keywords {
	def := DefaultKeywords()
	if len(k.Score) == 0 {
		k.Score = def.Score
	}
	roles := []struct {
		set *RoleKeywords
		def RoleKeywords
	}{
		{&k.Rank, def.Rank},
		{&k.Team, def.Team},
		{&k.Points, def.Points},
		{&k.GamesPlayed, def.GamesPlayed},
		{&k.Wins, def.Wins},
		{&k.Losses, def.Losses},
	}
	for _, r := range roles {
		if r.set.IsZero() {
			*r.set = r.def
		}
	}
	return k
}

// words splits a label on anything that is not a letter or digit.
func words(label string) []string {
	return strings.FieldsFunc(label, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
