package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/client/config"
	"github.com/dmitrijs2005/taskboard/internal/client/repositories/kv"
	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, tableExists(t, db, "goose_db_version"))
	assert.True(t, tableExists(t, db, "kv_store"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db), "second run must be a no-op")
	assert.True(t, tableExists(t, db, "kv_store"))
}

func TestOpen_SQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Storage: config.StorageSQLite, SQLitePath: filepath.Join(t.TempDir(), "tb.db")}

	repo, closeFn, err := Open(ctx, cfg, logging.Nop())
	require.NoError(t, err)
	require.IsType(t, &kv.SQLiteRepository{}, repo)
	require.NoError(t, repo.Set(ctx, "k", []byte("v")))
	require.NoError(t, closeFn())

	repo, closeFn, err = Open(ctx, cfg, logging.Nop())
	require.NoError(t, err)
	defer closeFn()

	v, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestOpen_Memory(t *testing.T) {
	repo, closeFn, err := Open(context.Background(), &config.Config{Storage: config.StorageMemory}, logging.Nop())
	require.NoError(t, err)
	assert.IsType(t, &kv.MemoryRepository{}, repo)
	assert.NoError(t, closeFn())
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, _, err := Open(context.Background(), &config.Config{Storage: "etcd"}, logging.Nop())
	assert.ErrorContains(t, err, `unknown storage backend "etcd"`)
}

func TestOpen_RedisUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cfg := &config.Config{Storage: config.StorageRedis, RedisAddr: "127.0.0.1:1", RedisPrefix: "tb"}
	_, _, err := Open(ctx, cfg, logging.Nop())
	assert.ErrorContains(t, err, "redis connection to 127.0.0.1:1 failed")
}

func TestOpen_SQLiteCreatesMissingDir(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageSQLite, SQLitePath: filepath.Join(t.TempDir(), "missing-dir", "x.db")}
	_, closeFn, err := Open(context.Background(), cfg, logging.Nop())
	require.NoError(t, err)
	assert.NoError(t, closeFn())
}

func TestOpen_SQLiteBadPath(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	cfg := &config.Config{Storage: config.StorageSQLite, SQLitePath: filepath.Join(blocker, "x.db")}
	_, _, err := Open(context.Background(), cfg, logging.Nop())
	assert.ErrorContains(t, err, "failed to prepare database directory")
}
