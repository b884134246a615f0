package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envPollSchedule = "POLL_SCHEDULE"
	envAdminToken   = "ADMIN_TOKEN"

	envSource       = "SOURCE"
	envSourceURL    = "SOURCE_URL"
	envFetchTimeout = "FETCH_TIMEOUT"
	envFetchRetries = "FETCH_RETRIES"
	envFetchMinGap  = "FETCH_MIN_INTERVAL"
	envUserAgent    = "USER_AGENT"

	envTeamName = "TEAM_NAME"
	envTopN     = "TOP_N"

	envOutputDir    = "OUTPUT_DIR"
	envXLSXEnabled  = "XLSX_ENABLED"
	envPrimaryColor = "TEAM_PRIMARY_COLOR"
	envAccentColor  = "TEAM_ACCENT_COLOR"
	envReloadEvery  = "OVERLAY_RELOAD"

	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// The league page changes a few times per match day; five minutes is plenty.
	defaultPollInterval = 5 * Duration(time.Minute)

	defaultSource       = SourceHTTP
	defaultSourceURL    = "https://www.rfevb.com/primera-division-femenina-grupo-b-clasificacion"
	defaultFetchTimeout = 20 * time.Second
	defaultFetchRetries = 3
	defaultFetchMinGap  = 10 * time.Second
	defaultUserAgent    = "Mozilla/5.0 (compatible; standings-overlay/1.0)"

	defaultTeamName = "CV Sant Just"
	defaultTopN     = 3

	defaultOutputDir    = "output"
	defaultPrimaryColor = "#305D87"
	defaultAccentColor  = "#F6F685"
	defaultReloadEvery  = 30 * time.Second

	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	defaultMetricsPort = "9090"
	defaultServiceName = "standings-overlay"
)

// Exported defaults for commands that build a pipeline without a full Config.
const (
	DefaultTeamName = defaultTeamName
	DefaultTopN     = defaultTopN
)
