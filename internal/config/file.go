package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/busdepot/internal/flagx"
	"github.com/dmitrijs2005/busdepot/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the DTO decoded from a config file. Empty fields leave the
// corresponding Config value untouched.
type FileConfig struct {
	DataDir      string         `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
	Storage      string         `json:"storage" yaml:"storage" toml:"storage"`
	DatabaseFile string         `json:"database_file" yaml:"database_file" toml:"database_file"`
	BusyTimeout  timex.Duration `json:"busy_timeout" yaml:"busy_timeout" toml:"busy_timeout"`
	LogLevel     string         `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFile      string         `json:"log_file" yaml:"log_file" toml:"log_file"`
	LogJSON      *bool          `json:"log_json" yaml:"log_json" toml:"log_json"`
}

// decodeFile reads path and decodes it according to its extension.
func decodeFile(path string) (FileConfig, error) {
	var fc FileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		err = fmt.Errorf("unsupported config file extension %q", ext)
	}
	return fc, err
}

// parseFile overlays cfg with the file named by -c/-config.
// It panics on read or decode errors; a broken config file is fatal.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	fc, err := decodeFile(path)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}
	if fc.Storage != "" {
		cfg.Storage = fc.Storage
	}
	if fc.DatabaseFile != "" {
		cfg.DatabaseFile = fc.DatabaseFile
	}
	if fc.BusyTimeout.Duration != 0 {
		cfg.BusyTimeout = fc.BusyTimeout.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	if fc.LogJSON != nil {
		cfg.LogJSON = *fc.LogJSON
	}
}
