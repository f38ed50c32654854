package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration.
type Config struct {
	ListenAddress   string
	DataDir         string
	Debug           bool
	ShutdownTimeout time.Duration

	OtelEnabled        bool
	OtelEndpoint       string
	OtelServiceName    string
	OtelServiceVersion string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddress: GetEnv("LISTEN_ADDRESS", ":8080"),
		DataDir:       GetEnv("DATA_DIR", "./data"),

		OtelEndpoint:       GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		OtelServiceName:    GetEnv("OTEL_SERVICE_NAME", "tbgen-dashboard"),
		OtelServiceVersion: GetEnv("OTEL_SERVICE_VERSION", "1.0.0"),
	}

	cfg.Debug, _ = strconv.ParseBool(GetEnv("DEBUG", "false"))
	cfg.OtelEnabled, _ = strconv.ParseBool(GetEnv("OTEL_ENABLED", "false"))

	timeoutSec, err := strconv.Atoi(GetEnv("SHUTDOWN_TIMEOUT_SECONDS", "5"))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 5
	}
	cfg.ShutdownTimeout = time.Duration(timeoutSec) * time.Second

	if info, err := os.Stat(cfg.DataDir); err != nil {
		return nil, fmt.Errorf("data directory %q: %w", cfg.DataDir, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("data directory %q is not a directory", cfg.DataDir)
	}

	return cfg, nil
}

// GetEnv retrieves an environment variable or returns a default value.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
