// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

type Config struct {
	// HTTP Server
	Port            string
	ShutdownTimeout time.Duration
	MetricsEnabled  bool

	// Storage
	StorageBackend string
	DBPath         string // sqlite backend
	DataDir        string // json backend

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),

		StorageBackend: getEnv("STORAGE_BACKEND", BackendSQLite),
		DBPath:         getEnv("DB_PATH", "./data/ledger.db"),
		DataDir:        getEnv("DATA_DIR", "./data"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error listing every problem found.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.StorageBackend {
	case BackendSQLite:
		if c.DBPath == "" {
			errors = append(errors, "database path cannot be empty when using sqlite backend")
		}
	case BackendJSON:
		if c.DataDir == "" {
			errors = append(errors, "data directory cannot be empty when using json backend")
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid storage backend '%s': must be one of [%s %s]",
			c.StorageBackend, BackendSQLite, BackendJSON))
	}

	if c.ShutdownTimeout < 0 {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must not be negative", c.ShutdownTimeout))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
