// Package storage opens the key-value repository selected by configuration.
//
// The SQLite backend applies the embedded goose migrations before use; the
// Redis backend pings the server so a bad address fails at startup rather
// than on the first write.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/client/config"
	"github.com/dmitrijs2005/taskboard/internal/client/migrations"
	"github.com/dmitrijs2005/taskboard/internal/client/repositories/kv"
	"github.com/dmitrijs2005/taskboard/internal/filex"
	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	_ "modernc.org/sqlite"
)

// CloseFunc releases whatever Open acquired.
type CloseFunc func() error

func noopClose() error { return nil }

// Open returns the repository for cfg.Storage.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (kv.Repository, CloseFunc, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		db, err := InitDatabase(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info(ctx, "storage opened", "backend", cfg.Storage, "path", cfg.SQLitePath)
		return kv.NewSQLiteRepository(db), db.Close, nil

	case config.StorageRedis:
		client, err := NewRedisClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		log.Info(ctx, "storage opened", "backend", cfg.Storage, "addr", cfg.RedisAddr, "prefix", cfg.RedisPrefix)
		return kv.NewRedisRepository(client, cfg.RedisPrefix), client.Close, nil

	case config.StorageMemory:
		log.Warn(ctx, "storage is in-memory, nothing will survive exit")
		return kv.NewMemoryRepository(), noopClose, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
}

// RunMigrations brings the SQLite schema up to date. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens the SQLite file at dsn and migrates it. The file's
// directory is created when missing; ":memory:" and "file:" DSNs are passed
// through untouched.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("failed to prepare database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewRedisClient connects to the configured server and checks it answers.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection to %s failed: %w", cfg.RedisAddr, err)
	}
	return rdb, nil
}
