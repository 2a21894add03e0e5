package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	defaults := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		expected    func() *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-s", "redis", "-d", "/tmp/x.db", "-r", "10.0.0.1:6380", "-l", "debug"},
			expected: func() *Config {
				c := defaults()
				c.Storage, c.SQLitePath, c.RedisAddr, c.LogLevel = "redis", "/tmp/x.db", "10.0.0.1:6380", "debug"
				return c
			},
		},
		{
			name:     "no flags keeps values",
			args:     []string{"cmd"},
			expected: defaults,
		},
		{
			name: "foreign flags are ignored",
			args: []string{"cmd", "-c", "cfg.json", "-s", "memory", "--verbose"},
			expected: func() *Config {
				c := defaults()
				c.Storage = "memory"
				return c
			},
		},
		{
			name:        "missing value panics",
			args:        []string{"cmd", "-s"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			cfg := defaults()
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected(), cfg))
		})
	}
}
