package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName names the data and config directories.
	AppName = "timesheet"
	// ConfigFile is the TOML configuration file name.
	ConfigFile = "config.toml"
)

// Config holds the application configuration. Values come from
// defaults, then the TOML config file, then TIMESHEET_* environment
// overrides, in that order.
type Config struct {
	// DBPath is the SQLite database file. A missing file means a fresh
	// schema is created on open.
	DBPath string `toml:"db_path"`
	// LegacyFile is the pre-SQLite JSON flat file checked once at
	// startup and imported when present.
	LegacyFile string `toml:"legacy_file"`
	// HTTPAddr is the listen address for the web front end.
	HTTPAddr string `toml:"http_addr"`
	// LogPath receives use-case and request logs when set; empty
	// disables logging.
	LogPath string `toml:"log_path"`
}

// DefaultConfig places the store under ~/.timesheet and serves the web
// front end on port 5000.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	dataDir := filepath.Join(home, "."+AppName)
	return Config{
		DBPath:     filepath.Join(dataDir, "timesheet.db"),
		LegacyFile: filepath.Join(dataDir, "timesheet_data.json"),
		HTTPAddr:   ":5000",
	}, nil
}

// Load builds the effective configuration.
func Load() (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	path := os.Getenv("TIMESHEET_CONFIG")
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err == nil {
			path = filepath.Join(configDir, AppName, ConfigFile)
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TIMESHEET_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TIMESHEET_LEGACY_FILE"); v != "" {
		cfg.LegacyFile = v
	}
	if v := os.Getenv("TIMESHEET_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("TIMESHEET_LOG"); v != "" {
		cfg.LogPath = v
	}
}
