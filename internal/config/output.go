package config

import "time"

// OutputConfig controls the artifact directory and overlay styling.
type OutputConfig struct {
	Dir          string
	XLSXEnabled  bool
	PrimaryColor string
	AccentColor  string
	ReloadEvery  time.Duration
}

func loadOutput() OutputConfig {
	return OutputConfig{
		Dir:          envOrDefault(envOutputDir, defaultOutputDir),
		XLSXEnabled:  boolEnvOrDefault(envXLSXEnabled, false),
		PrimaryColor: colorEnvOrDefault(envPrimaryColor, defaultPrimaryColor),
		AccentColor:  colorEnvOrDefault(envAccentColor, defaultAccentColor),
		ReloadEvery:  durationEnvOrDefault(envReloadEvery, defaultReloadEvery),
	}
}
