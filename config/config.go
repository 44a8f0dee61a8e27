package config

import (
	"credcheck/client"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvEndpoint = "CREDCHECK_ENDPOINT"
	EnvTimeout  = "CREDCHECK_TIMEOUT"
	EnvLogFile  = "CREDCHECK_LOG_FILE"
)

// Config holds the client settings
type Config struct {
	// Endpoint is the analysis service URL requests are posted to
	Endpoint string

	// Timeout bounds a single analysis request; zero waits indefinitely
	Timeout time.Duration

	// LogFile receives debug logs; empty disables logging since the TUI owns the terminal
	LogFile string
}

// Load reads configuration from the environment, loading .env if present
func Load() (*Config, error) {
	// Non-fatal if .env is missing
	_ = godotenv.Load()

	cfg := &Config{
		Endpoint: getEnvOrDefault(EnvEndpoint, client.DefaultEndpoint),
		LogFile:  strings.TrimSpace(os.Getenv(EnvLogFile)),
	}

	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		if timeout < 0 {
			return nil, fmt.Errorf("invalid %s %q: must not be negative", EnvTimeout, v)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}
