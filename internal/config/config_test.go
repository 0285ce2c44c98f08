package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		envPort, envDatasetPath, envDatasetFormat, envSearchLimit,
		envCORSOrigins, envForwardURL, envForwardTimeout, envForwardAttempts,
		envMetricsPort, envMetricsOn, envOtelEndpoint, envOtelService, envOtelInsecure,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.Dataset.Path != defaultDatasetPath || cfg.Dataset.Format != "" {
		t.Fatalf("unexpected dataset config %+v", cfg.Dataset)
	}
	if cfg.SearchLimit != defaultSearchLimit {
		t.Fatalf("expected default search limit, got %d", cfg.SearchLimit)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS default, got %v", cfg.CORSOrigins)
	}
	if cfg.Forwarder.Endpoint != "" || cfg.Forwarder.MaxAttempts != defaultForwardTries || cfg.Forwarder.Timeout != defaultForwardWait {
		t.Fatalf("unexpected forwarder config %+v", cfg.Forwarder)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != defaultOtelService {
		t.Fatalf("unexpected metrics config %+v", cfg.Metrics)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(envPort, "8080")
	t.Setenv(envDatasetPath, "/tmp/roster.json")
	t.Setenv(envDatasetFormat, "json")
	t.Setenv(envSearchLimit, "15")
	t.Setenv(envCORSOrigins, "https://scout.example")
	t.Setenv(envForwardURL, "https://script.example/exec")
	t.Setenv(envForwardTimeout, "2s")
	t.Setenv(envForwardAttempts, "5")
	t.Setenv(envMetricsOn, "false")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.Dataset.Path != "/tmp/roster.json" || cfg.Dataset.Format != "json" {
		t.Fatalf("unexpected dataset config %+v", cfg.Dataset)
	}
	if cfg.SearchLimit != 15 {
		t.Fatalf("expected search limit 15, got %d", cfg.SearchLimit)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://scout.example" {
		t.Fatalf("unexpected CORS origins %v", cfg.CORSOrigins)
	}
	if cfg.Forwarder.Endpoint != "https://script.example/exec" || cfg.Forwarder.Timeout != 2*time.Second || cfg.Forwarder.MaxAttempts != 5 {
		t.Fatalf("unexpected forwarder config %+v", cfg.Forwarder)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestClampSearchLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-1, defaultSearchLimit},
		{0, defaultSearchLimit},
		{1, 1},
		{defaultSearchLimit, defaultSearchLimit},
		{maxSearchLimit, maxSearchLimit},
		{maxSearchLimit + 30, maxSearchLimit},
	}
	for _, tc := range cases {
		if got := clampSearchLimit(tc.in); got != tc.want {
			t.Fatalf("clampSearchLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLoadClampsOversizedSearchLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv(envSearchLimit, "500")

	if got := Load().SearchLimit; got != maxSearchLimit {
		t.Fatalf("expected clamp to %d, got %d", maxSearchLimit, got)
	}
}
