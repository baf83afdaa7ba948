// Package config provides environment-driven configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort              = 5000
	DefaultGenerationTimeout = 60 * time.Second
)

// Config holds server configuration. APIKey may be empty: without a
// server key and without a caller-supplied one, translations fall back
// to mock output.
type Config struct {
	Port              int
	DatabaseURL       string
	APIKey            string
	GenerationTimeout time.Duration
}

// Load reads configuration from the environment. DATABASE_URL is the
// only required variable.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              DefaultPort,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		APIKey:            os.Getenv("GEMINI_API_KEY"),
		GenerationTimeout: DefaultGenerationTimeout,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("invalid PORT value %q", port)
		}
		cfg.Port = p
	}

	if timeout := os.Getenv("GENERATION_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid GENERATION_TIMEOUT value %q", timeout)
		}
		cfg.GenerationTimeout = d
	}

	return cfg, nil
}
