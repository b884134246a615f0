package config

// StandingsConfig names the team to follow and how many leaders to summarize.
type StandingsConfig struct {
	TeamName string
	TopN     int
}

func loadStandings() StandingsConfig {
	return StandingsConfig{
		TeamName: envOrDefault(envTeamName, defaultTeamName),
		TopN:     intEnvOrDefault(envTopN, defaultTopN),
	}
}
