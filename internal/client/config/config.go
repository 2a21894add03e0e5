package config

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config holds runtime settings for the taskboard CLI.
//
// Fields:
//   - Storage: persistence backend, one of "sqlite", "redis", "memory".
//   - SQLitePath: database file used by the sqlite backend.
//   - RedisAddr, RedisPassword, RedisDB: connection settings for the redis backend.
//   - RedisPrefix: namespace for every key the redis backend writes.
//   - LogLevel: "debug", "info", "warn" or "error".
//   - LogFormat: "text" or "json" (log/slog), or "zap".
type Config struct {
	Storage       string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	LogLevel      string
	LogFormat     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Storage = StorageSQLite
	c.SQLitePath = "taskboard.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.RedisPrefix = "taskboard"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
