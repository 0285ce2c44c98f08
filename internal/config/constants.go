package config

import "time"

const (
	envPort            = "PORT"
	envDatasetPath     = "DATASET_PATH"
	envDatasetFormat   = "DATASET_FORMAT"
	envSearchLimit     = "SEARCH_LIMIT"
	envCORSOrigins     = "CORS_ORIGINS"
	envForwardURL      = "GOOGLE_SCRIPT_URL"
	envForwardTimeout  = "FORWARD_TIMEOUT"
	envForwardAttempts = "FORWARD_MAX_ATTEMPTS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort          = "5000"
	defaultDatasetPath   = "data/players.csv"
	defaultSearchLimit   = 10
	defaultMetricsPort   = "9090"
	defaultForwardURL    = ""
	defaultForwardTries  = 3
	defaultForwardWait   = 10 * Duration(time.Second)
	defaultOtelService   = "scout-data-service"
	defaultMetricsEnable = true

	// The name search never returns more than this many records, whatever
	// SEARCH_LIMIT says.
	maxSearchLimit = 20
)
