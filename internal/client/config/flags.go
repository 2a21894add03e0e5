package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/taskboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   storage backend (default from Config)
//	-d string   SQLite database path (default from Config)
//	-r string   Redis address (default from Config)
//	-l string   log level (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"s", "d", "r", "l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend: sqlite, redis or memory")
	fs.StringVar(&cfg.SQLitePath, "d", cfg.SQLitePath, "path of the SQLite database file")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "address and port of the Redis server")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
