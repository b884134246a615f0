package config

import (
	"fmt"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the service.
type Config struct {
	Port         string
	PollInterval Duration
	// PollSchedule is an optional cron expression; when set it replaces PollInterval.
	PollSchedule string
	AdminToken   string
	Source       SourceConfig
	Standings    StandingsConfig
	Output       OutputConfig
	Logging      LoggingConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		PollSchedule: envOrDefault(envPollSchedule, ""),
		AdminToken:   envOrDefault(envAdminToken, ""),
		Source:       loadSource(),
		Standings:    loadStandings(),
		Output:       loadOutput(),
		Logging:      loadLogging(),
		Metrics:      loadMetrics(),
	}
}

// LoadEnvFile preloads variables from a dotenv file. Variables already present in
// the environment win. An empty path is a no-op.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
