package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Reset lists the stored documents and, once the user confirms, wipes them
// and starts over with empty stores.
func (a *App) Reset(ctx context.Context) error {
	docs, err := a.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("error listing stored data: %w", err)
	}
	if len(docs) == 0 {
		a.println("Nothing to reset")
		return nil
	}

	keys := slices.Sorted(maps.Keys(docs))
	for _, k := range keys {
		a.println(fmt.Sprintf("  %s (%d bytes)", k, len(docs[k])))
	}
	answer, err := getSimpleText(a.reader, "Type 'yes' to delete all local data", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		a.println("Reset cancelled")
		return nil
	}

	if err := a.repo.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing stored data: %w", err)
	}
	if err := a.load(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "local data reset", "keys", len(keys))
	a.println("Local data removed")
	return nil
}
