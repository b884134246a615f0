package config

// LoggingConfig selects the slog handler and level.
type LoggingConfig struct {
	Level  string
	Format string
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
	}
}
