package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/store/sqlitestore"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file ($TODOLIST_CONFIG_DIR/config.toml or the OS config dir)
// 3. Project config file (todolist.toml or .todolist.toml in the current directory)
// 4. Explicit file (the --config flag), if path is not empty
// 5. Environment variables
// CLI flags are applied by the caller afterwards, followed by Finalize.
func Load(path string) (*Config, error) {
	cfg := Default()

	if userFile := findUserConfigFile(); userFile != "" {
		if err := loadConfigFile(cfg, userFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userFile, err)
		}
	}

	if projectFile := findProjectConfigFile(); projectFile != "" {
		if err := loadConfigFile(cfg, projectFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectFile, err)
		}
	}

	if path != "" {
		if err := loadConfigFile(cfg, expandPath(path)); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize expands paths and validates. Call it once flags are applied.
func (c *Config) Finalize() error {
	return c.finalize()
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TODOLIST_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("TODOLIST_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TODOLIST_STORAGE_KEY"); v != "" {
		cfg.StorageKey = v
	}
	if v := os.Getenv("TODOLIST_NOTIFY_DELAY_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TODOLIST_NOTIFY_DELAY_MS: not a number: %q", v)
		}
		cfg.NotifyDelayMS = n
	}
	if v := os.Getenv("TODOLIST_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODOLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODOLIST_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TODOLIST_ADDR"); v != "" {
		cfg.Addr = v
	}
	return nil
}

// userConfigDir returns the directory holding the user config file.
func userConfigDir() string {
	if dir := os.Getenv("TODOLIST_CONFIG_DIR"); dir != "" {
		return expandPath(dir)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todolist")
}

func findUserConfigFile() string {
	dir := userConfigDir()
	if dir == "" {
		return ""
	}
	return existingFile(filepath.Join(dir, "config.toml"))
}

func findProjectConfigFile() string {
	for _, name := range []string{"todolist.toml", ".todolist.toml"} {
		if p := existingFile(name); p != "" {
			return p
		}
	}
	return ""
}

func existingFile(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return path
}

// DataPath returns the file the selected backend stores into. The memory
// backend has none.
func (c *Config) DataPath() string {
	switch c.Backend {
	case BackendJSON:
		return filepath.Join(c.DataDir, jsonstore.DataFileName)
	case BackendSQLite:
		return filepath.Join(c.DataDir, sqlitestore.DataFileName)
	}
	return ""
}
