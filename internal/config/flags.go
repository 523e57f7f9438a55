package config

import (
	"flag"
	"os"
	"time"

	"github.com/avoronin/authkeep/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local auth database (default from Config)
//	-t int      operation timeout in seconds (default from Config)
//	-l string   log level: debug, info, warn, error
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the local auth database")
	operationTimeout := fs.Int("t", int(cfg.OperationTimeout.Seconds()), "operation timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OperationTimeout = time.Duration(*operationTimeout) * time.Second
}
