package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/taskboard/internal/client/repositories/kv"
	"github.com/dmitrijs2005/taskboard/internal/logging"
)

// loadState decodes the document stored under key into v. It reports false
// when nothing has been stored yet.
func loadState(ctx context.Context, repo kv.Repository, key string, v any) (bool, error) {
	data, err := repo.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// saveState writes v under key. Failures are logged, not returned: the
// in-memory state stays authoritative for the running process.
func saveState(ctx context.Context, repo kv.Repository, log logging.Logger, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error(ctx, "failed to encode state", "key", key, "error", err)
		return
	}
	if err := repo.Set(ctx, key, data); err != nil {
		log.Warn(ctx, "failed to persist state", "key", key, "error", err)
	}
}

// dropState removes key. Like saveState, failures are only logged.
func dropState(ctx context.Context, repo kv.Repository, log logging.Logger, key string) {
	if err := repo.Delete(ctx, key); err != nil {
		log.Warn(ctx, "failed to drop state", "key", key, "error", err)
	}
}
