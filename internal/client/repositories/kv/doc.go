// Package kv provides the client-side persistence layer: a small key/value
// repository the stores load their state from at startup and write back to
// after every change.
//
// # Overview
//
// The package defines a Repository interface (Get/Set/Delete/List/Clear over
// string keys and opaque byte values) and three implementations:
//
//   - SQLiteRepository: a single kv_store table, reached through a dbx.DBTX
//     (*sql.DB or *sql.Tx); the schema comes from internal/client/migrations
//   - RedisRepository: Redis strings under a common key prefix
//   - MemoryRepository: a process-local map, for tests and throwaway runs
//
// # Contract
//
// Get returns (nil, nil) for a missing key. Delete of a missing key is not an
// error. Values are copied on the way in and out, so callers may reuse their
// buffers.
//
// Typical Usage
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "tasks-store", blob)
//	blob, _ = repo.Get(ctx, "tasks-store")
package kv
