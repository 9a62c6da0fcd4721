// Package config provides configuration types for the Symptom-Story client.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the top-level configuration for the Symptom-Story client.
type Config struct {
	// Server configures the backend the client talks to.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Storage configures local durable files.
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Offline configures the backend-free variant.
	Offline OfflineConfig `yaml:"offline" mapstructure:"offline"`

	// DevMode enables development features (verbose logging).
	DevMode bool `yaml:"dev_mode" mapstructure:"dev_mode"`
}

// ServerConfig configures the backend connection.
type ServerConfig struct {
	// Addr is the backend base URL (e.g. "http://localhost:8000").
	Addr string `yaml:"addr" mapstructure:"addr" validate:"omitempty,url"`

	// Timeout is the HTTP request timeout (e.g. "30s").
	// Defaults to "30s" if empty.
	Timeout string `yaml:"timeout" mapstructure:"timeout" validate:"omitempty,duration"`

	// LogLevel sets the minimum log level.
	// Valid values: "debug", "info", "warn", "error".
	// Defaults to "info" if empty. DevMode=true overrides to "debug".
	LogLevel string `yaml:"log_level" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
}

// StorageConfig configures the local durable files.
type StorageConfig struct {
	// CredentialsPath is where the bearer token and role are persisted.
	// Defaults to ~/.symptom-story/credentials.json.
	CredentialsPath string `yaml:"credentials_path" mapstructure:"credentials_path"`

	// AnalysisCacheTTL is the TTL for cached text-analysis responses
	// (e.g. "30s"). "0" disables the cache. Defaults to "30s".
	AnalysisCacheTTL string `yaml:"analysis_cache_ttl" mapstructure:"analysis_cache_ttl" validate:"omitempty,duration"`
}

// OfflineConfig configures the backend-free variant.
type OfflineConfig struct {
	// Enabled switches the CLI to the local SQLite store instead of the
	// remote backend. Default: false.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// DatabasePath is the SQLite file for offline accounts and bookings.
	// Defaults to ~/.symptom-story/offline.db.
	DatabasePath string `yaml:"database_path" mapstructure:"database_path"`
}

// SetDefaults fills empty fields with their documented defaults.
func (c *Config) SetDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = "http://localhost:8000"
	}
	if c.Server.Timeout == "" {
		c.Server.Timeout = "30s"
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.DevMode {
		c.Server.LogLevel = "debug"
	}
	if c.Storage.CredentialsPath == "" {
		c.Storage.CredentialsPath = filepath.Join(configDir(), "credentials.json")
	}
	if c.Storage.AnalysisCacheTTL == "" {
		c.Storage.AnalysisCacheTTL = "30s"
	}
	if c.Offline.DatabasePath == "" {
		c.Offline.DatabasePath = filepath.Join(configDir(), "offline.db")
	}
}

// RequestTimeout returns the parsed server timeout.
// Call after SetDefaults and Validate.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// CacheTTL returns the parsed analysis cache TTL.
// Call after SetDefaults and Validate.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Storage.AnalysisCacheTTL)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// configDir is ~/.symptom-story, falling back to the working directory
// when the home directory cannot be determined.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".symptom-story"
	}
	return filepath.Join(home, ".symptom-story")
}
