// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/idilsaglam/todolist/internal/store"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Default values.
const (
	DefaultBackend       = BackendJSON
	DefaultDataDir       = "."
	DefaultNotifyDelayMS = 1000
	DefaultTheme         = "classic"
	DefaultLogLevel      = "warn"
	DefaultAddr          = "127.0.0.1:8080"
)

// Config holds the full configuration for the todo tool.
type Config struct {
	// Storage
	Backend    string `toml:"backend"`
	DataDir    string `toml:"data_dir"`
	StorageKey string `toml:"storage_key"`

	// How long a status notice stays on screen.
	NotifyDelayMS int `toml:"notify_delay_ms"`

	// Output
	Theme string `toml:"theme"`

	// Logging
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	// Web page
	Addr string `toml:"addr"`
}

// Default returns a Config with every field at its default.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func setDefaults(cfg *Config) {
	cfg.Backend = DefaultBackend
	cfg.DataDir = DefaultDataDir
	cfg.StorageKey = store.DefaultKey
	cfg.NotifyDelayMS = DefaultNotifyDelayMS
	cfg.Theme = DefaultTheme
	cfg.LogLevel = DefaultLogLevel
	cfg.Addr = DefaultAddr
}

// NotifyDelay returns the notice display time.
func (c *Config) NotifyDelay() time.Duration {
	return time.Duration(c.NotifyDelayMS) * time.Millisecond
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (want %s, %s or %s)", c.Backend, BackendJSON, BackendSQLite, BackendMemory)
	}
	if c.NotifyDelayMS < 0 {
		return fmt.Errorf("notify_delay_ms must not be negative, got %d", c.NotifyDelayMS)
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		return fmt.Errorf("storage_key must not be empty")
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	return nil
}

// finalize expands paths after all sources have been applied.
func (c *Config) finalize() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	c.DataDir = filepath.Clean(expandPath(c.DataDir))
	if c.LogFile != "" {
		c.LogFile = filepath.Clean(expandPath(c.LogFile))
	}
	return c.Validate()
}
