// Package config loads runtime configuration for the busdepot CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via -c or -config.
//     The format follows the extension: .json, .yaml/.yml or .toml.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory holding the database or the flat files
//	-s string   storage backend: "sqlite" or "file"
//	-l string   log level (debug, info, warn, error)
//	-f string   log file, relative to the data directory; "-" means stderr
//
// # File schema
//
// Durations are parsed with timex.Duration, so "5s" and integer
// nanoseconds are both accepted:
//
//	{
//	  "data_dir": "/var/lib/busdepot",
//	  "storage": "sqlite",
//	  "database_file": "depot.db",
//	  "busy_timeout": "5s",
//	  "log_level": "info",
//	  "log_file": "depot.log",
//	  "log_json": false
//	}
package config
