// Package config loads runtime configuration for the taskboard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via flags: -c or -config.
//     Files ending in .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   storage backend: sqlite, redis or memory
//	-d string   path of the SQLite database file
//	-r string   address:port of the Redis server
//	-l string   log level: debug, info, warn, error
//
// # File schema
//
// Keys missing from the file keep their previous value:
//
//	{
//	  "storage": "redis",
//	  "sqlite_path": "taskboard.db",
//	  "redis": {"addr": "127.0.0.1:6379", "password": "", "db": 0, "prefix": "taskboard"},
//	  "log": {"level": "debug", "format": "json"}
//	}
//
// Note: This package does not read environment variables directly; use the
// config file or flags to configure values.
package config
