package config

import (
	"path/filepath"
	"time"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
)

// Config holds runtime settings for the busdepot CLI.
type Config struct {
	DataDir      string
	Storage      string
	DatabaseFile string
	BusyTimeout  time.Duration
	LogLevel     string
	LogFile      string
	LogJSON      bool
}

// LoadDefaults populates c with defaults. The data files land in the
// working directory, like the original depot program.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.Storage = StorageSQLite
	c.DatabaseFile = "depot.db"
	c.BusyTimeout = 5 * time.Second
	c.LogLevel = "info"
	c.LogFile = "depot.log"
	c.LogJSON = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the config file (if any) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}

// DatabasePath is the SQLite file location.
func (c *Config) DatabasePath() string {
	return c.resolve(c.DatabaseFile)
}

// LogPath is the log file location, or "" when logging to stderr.
func (c *Config) LogPath() string {
	if c.LogFile == "" || c.LogFile == "-" {
		return ""
	}
	return c.resolve(c.LogFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
