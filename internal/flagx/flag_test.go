package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			args:  []string{"-c", "conf.json", "-s", "memory"},
			names: []string{"c", "config"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "long flag with equals",
			args:  []string{"--config=alt.json", "-s", "memory"},
			names: []string{"c", "config"},
			want:  []string{"--config=alt.json"},
		},
		{
			name:  "single and double dash both match",
			args:  []string{"-config", "a.json", "--c", "b.json"},
			names: []string{"c", "config"},
			want:  []string{"-config", "a.json", "--c", "b.json"},
		},
		{
			name:  "names may be given with dashes",
			args:  []string{"-d", "x.db"},
			names: []string{"-d"},
			want:  []string{"-d", "x.db"},
		},
		{
			name:  "unknown flags and positionals ignored",
			args:  []string{"-x", "1", "--y=2", "positional"},
			names: []string{"c"},
			want:  []string{},
		},
		{
			name:  "flag without value at end is kept as-is",
			args:  []string{"-c"},
			names: []string{"c"},
			want:  []string{"-c"},
		},
		{
			name:  "next flag is not taken as value",
			args:  []string{"-c", "-s", "memory"},
			names: []string{"c", "s"},
			want:  []string{"-c", "-s", "memory"},
		},
		{
			name:  "equals value that looks like a flag",
			args:  []string{"--config=--weird.json"},
			names: []string{"config"},
			want:  []string{"--config=--weird.json"},
		},
		{
			name:  "stops at terminator",
			args:  []string{"-s", "redis", "--", "-c", "late.json"},
			names: []string{"c", "s"},
			want:  []string{"-s", "redis"},
		},
		{
			name:  "bare dash is a value",
			args:  []string{"-d", "-"},
			names: []string{"d"},
			want:  []string{"-d", "-"},
		},
		{
			name:  "repeated flag preserved in order",
			args:  []string{"-c", "one.json", "-c", "two.json"},
			names: []string{"c"},
			want:  []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:  "empty args",
			args:  []string{},
			names: []string{"c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.names))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.yaml"}
		assert.Equal(t, "/path/short.yaml", ConfigFileFlag())
	})

	t.Run("long --config with equals", func(t *testing.T) {
		os.Args = []string{"testbin", "--config=/path/long.json"}
		assert.Equal(t, "/path/long.json", ConfigFileFlag())
	})

	t.Run("other flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-s", "memory", "-l", "debug"}
		assert.Empty(t, ConfigFileFlag())
	})

	t.Run("last one wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", ConfigFileFlag())
	})
}
