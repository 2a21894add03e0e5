package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
)

// Accepted due date layouts, tried in order. Date-only values mean UTC
// midnight; date-times without an offset are read in the local zone.
var dueDateLayouts = []struct {
	layout string
	local  bool
}{
	{time.RFC3339, false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02T15:04", true},
	{time.DateOnly, false},
}

// parseDueDate returns nil for blank input. Parsed values are normalized to UTC.
func parseDueDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, l := range dueDateLayouts {
		var (
			t   time.Time
			err error
		)
		if l.local {
			t, err = time.ParseInLocation(l.layout, raw, time.Local)
		} else {
			t, err = time.Parse(l.layout, raw)
		}
		if err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, common.Validation(fmt.Sprintf("invalid due date: %s", raw))
}
