// Package config loads the CrewDeck runtime configuration: a JSON file
// in the data directory with environment overrides on top. A missing
// config file is not an error; defaults apply.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. Each overrides the matching file field.
const (
	EnvDataDir       = "CREWDECK_DATA_DIR"
	EnvLogLevel      = "CREWDECK_LOG_LEVEL"
	EnvSweepInterval = "CREWDECK_SWEEP_INTERVAL_SECONDS"
)

// Config is the flat CrewDeck configuration.
type Config struct {
	DataDir              string `json:"dataDir,omitempty"`
	LogLevel             string `json:"logLevel,omitempty"`
	SweepIntervalSeconds int    `json:"sweepIntervalSeconds,omitempty"`
}

// DefaultDataDir returns ~/.crewdeck, or a relative fallback when the
// home directory cannot be resolved.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".crewdeck"
	}
	return filepath.Join(home, ".crewdeck")
}

// Load reads <dataDir>/config.json and applies environment overrides.
// A .env file in the working directory is honored first, matching how
// the tool is run in development.
func Load() (*Config, error) {
	// Missing .env is the normal production case.
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:              DefaultDataDir(),
		LogLevel:             "info",
		SweepIntervalSeconds: 30,
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.DataDir = dir
	}

	path := filepath.Join(cfg.DataDir, "config.json")
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Environment wins over the file.
	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.DataDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
	if raw := os.Getenv(EnvSweepInterval); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid %s %q", EnvSweepInterval, raw)
		}
		cfg.SweepIntervalSeconds = secs
	}

	return cfg, nil
}

// Save writes config.json into the data directory.
func Save(cfg *Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	path := filepath.Join(cfg.DataDir, "config.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// DBPath returns the sqlite database file inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "crewdeck.db")
}

// SweepInterval returns the sweep cadence as a duration.
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}
