package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goserg/elocalc/internal/elo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_run(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "outcome A wins",
			args: []string{"outcome", "1500", "1500", "a"},
			want: "A: 1500.00 -> 1516.00 (+16.00)\nB: 1500.00 -> 1484.00 (-16.00)\n",
		},
		{
			name: "outcome by code",
			args: []string{"outcome", "1500", "1500", "0"},
			want: "A: 1500.00 -> 1500.00 (+0.00)\nB: 1500.00 -> 1500.00 (+0.00)\n",
		},
		{
			name: "points bonus default",
			args: []string{"points", "1500", "1500", "3", "1"},
			want: "A: 1500.00 -> 1528.00 (+28.00)\nB: 1500.00 -> 1480.00 (-20.00)\n",
		},
		{
			name: "points fraction",
			args: []string{"points", "-method", "fraction", "1500", "1500", "3", "1"},
			want: "A: 1500.00 -> 1508.00 (+8.00)\nB: 1500.00 -> 1492.00 (-8.00)\n",
		},
		{
			name: "points outcome override",
			args: []string{"points", "-method", "0", "-outcome", "b", "1500", "1500", "3", "1"},
			want: "A: 1500.00 -> 1484.00 (-16.00)\nB: 1500.00 -> 1516.00 (+16.00)\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(tt.args, &out))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func Test_run_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[elo]\nk_factor = 10\n"), 0o644))
	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", path, "outcome", "1500", "1500", "b"}, &out))
	assert.Equal(t, "A: 1500.00 -> 1495.00 (-5.00)\nB: 1500.00 -> 1505.00 (+5.00)\n", out.String())
}

func Test_run_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		invalidArg bool
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"glicko"}},
		{name: "outcome arity", args: []string{"outcome", "1500", "1500"}},
		{name: "not a number", args: []string{"outcome", "abc", "1500", "a"}},
		{name: "bad outcome", args: []string{"outcome", "1500", "1500", "3"}, invalidArg: true},
		{name: "bad method", args: []string{"points", "-method", "5", "1500", "1500", "1", "1"}, invalidArg: true},
		{name: "bad override", args: []string{"points", "-outcome", "x", "1500", "1500", "1", "1"}, invalidArg: true},
		{name: "missing config", args: []string{"-config", "/nonexistent/elo.toml", "serve"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, &bytes.Buffer{})
			require.Error(t, err)
			if tt.invalidArg {
				assert.ErrorIs(t, err, elo.ErrInvalidArgument)
			}
		})
	}
}
