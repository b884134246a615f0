package config

import (
	"strings"
	"time"
)

// Source kinds.
const (
	SourceHTTP    = "http"
	SourceFixture = "fixture"
)

// SourceConfig controls where the standings page comes from and how it is fetched.
type SourceConfig struct {
	Kind        string
	URL         string
	Timeout     time.Duration
	Retries     int
	MinInterval time.Duration
	UserAgent   string
}

func loadSource() SourceConfig {
	return SourceConfig{
		Kind:        strings.ToLower(envOrDefault(envSource, defaultSource)),
		URL:         envOrDefault(envSourceURL, defaultSourceURL),
		Timeout:     durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		Retries:     intEnvOrDefault(envFetchRetries, defaultFetchRetries),
		MinInterval: durationEnvOrDefault(envFetchMinGap, defaultFetchMinGap),
		UserAgent:   envOrDefault(envUserAgent, defaultUserAgent),
	}
}
