// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const appDirName = "cantilver-expense"

// Config holds the application configuration.
type Config struct {
	// DBPath is the location of the SQLite database file.
	DBPath string

	// SessionSecret signs session tokens. When empty, a per-install
	// secret is generated next to the database on first run.
	SessionSecret string

	// SessionTTL is how long a login session remains valid.
	SessionTTL time.Duration

	// SessionTokenPath is where the CLI persists the session token
	// between invocations.
	SessionTokenPath string
}

// Load reads configuration from the environment, falling back to per-user
// defaults under the OS config directory.
func Load() *Config {
	return &Config{
		DBPath:           getEnv("EXPENSES_DB_PATH", defaultPath("expenses.db")),
		SessionSecret:    getEnv("EXPENSES_SESSION_SECRET", ""),
		SessionTTL:       getEnvDuration("EXPENSES_SESSION_TTL", 24*time.Hour),
		SessionTokenPath: getEnv("EXPENSES_SESSION_FILE", defaultPath("session")),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.DBPath == "" {
		errs = append(errs, "database path cannot be empty")
	}
	if c.SessionTokenPath == "" {
		errs = append(errs, "session token path cannot be empty")
	}
	if c.SessionTTL < time.Minute {
		errs = append(errs, fmt.Sprintf("invalid session TTL %v: must be at least 1 minute", c.SessionTTL))
	} else if c.SessionTTL > 30*24*time.Hour {
		errs = append(errs, fmt.Sprintf("invalid session TTL %v: must be at most 30 days", c.SessionTTL))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// defaultPath places a file under the per-user config directory, falling
// back to ./data when the config directory cannot be resolved.
func defaultPath(name string) string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName, name)
	}
	return filepath.Join("data", name)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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
