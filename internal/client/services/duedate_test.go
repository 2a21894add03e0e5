package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskboard/internal/common"
)

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"date only is utc midnight", "2024-06-30", time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)},
		{"rfc3339 utc", "2024-06-30T10:15:00Z", time.Date(2024, 6, 30, 10, 15, 0, 0, time.UTC)},
		{"rfc3339 offset", "2024-06-30T12:15:00+02:00", time.Date(2024, 6, 30, 10, 15, 0, 0, time.UTC)},
		{"surrounding spaces", "  2024-01-02 ", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"local seconds", "2024-06-30T10:15:30", time.Date(2024, 6, 30, 10, 15, 30, 0, time.Local).UTC()},
		{"local minutes", "2024-06-30T10:15", time.Date(2024, 6, 30, 10, 15, 0, 0, time.Local).UTC()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDueDate(tt.raw)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %v, got %v", tt.want, *got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseDueDate_Blank(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		got, err := parseDueDate(raw)
		assert.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestParseDueDate_Invalid(t *testing.T) {
	for _, raw := range []string{"tomorrow", "2024-13-01", "30/06/2024"} {
		_, err := parseDueDate(raw)
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, common.ErrValidation)
		assert.Equal(t, "invalid due date: "+raw, err.Error())
	}
}
