package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/busdepot/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-d string   data directory
//	-s string   storage backend ("sqlite" or "file")
//	-l string   log level
//	-f string   log file; pass -f=- for stderr
//
// os.Args is filtered through flagx.FilterArgs first so that the -c flag
// handled by parseFile does not trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend (sqlite|file)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFile, "f", cfg.LogFile, "log file, - for stderr")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if cfg.Storage != StorageSQLite && cfg.Storage != StorageFile {
		panic(fmt.Errorf("unknown storage backend %q", cfg.Storage))
	}
}
