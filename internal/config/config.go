package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Dataset     DatasetConfig
	SearchLimit int
	CORSOrigins []string
	Forwarder   ForwarderConfig
	Metrics     MetricsConfig
}

// DatasetConfig locates the roster dataset loaded at startup.
type DatasetConfig struct {
	Path   string
	Format string
}

// ForwarderConfig controls demo-form forwarding to the upstream script.
type ForwarderConfig struct {
	Endpoint    string
	Timeout     Duration
	MaxAttempts int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Dataset:     loadDataset(),
		SearchLimit: clampSearchLimit(intEnvOrDefault(envSearchLimit, defaultSearchLimit)),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, []string{"*"}),
		Forwarder:   loadForwarder(),
		Metrics:     loadMetrics(),
	}
}

func loadDataset() DatasetConfig {
	return DatasetConfig{
		Path:   envOrDefault(envDatasetPath, defaultDatasetPath),
		Format: envOrDefault(envDatasetFormat, ""),
	}
}

func loadForwarder() ForwarderConfig {
	return ForwarderConfig{
		Endpoint:    envOrDefault(envForwardURL, defaultForwardURL),
		Timeout:     durationEnvOrDefault(envForwardTimeout, defaultForwardWait),
		MaxAttempts: intEnvOrDefault(envForwardAttempts, defaultForwardTries),
	}
}

func clampSearchLimit(limit int) int {
	if limit <= 0 {
		return defaultSearchLimit
	}
	if limit > maxSearchLimit {
		return maxSearchLimit
	}
	return limit
}
