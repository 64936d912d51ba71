package cli_test

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/store"
)

func envOf(kv map[string]string) func(string) string {
	return func(k string) string { return kv[k] }
}

func TestParseFlagsDefaults(t *testing.T) {
	opt, args, err := cli.ParseFlags([]string{"ls"}, envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"ls"}, args)
	assert.Empty(t, opt.DataPath)
	assert.Empty(t, opt.Theme)
	assert.Equal(t, "auto", opt.Color)
	assert.Nil(t, opt.IDs)
	assert.False(t, opt.Group)
	assert.False(t, opt.JSON)
}

func TestParseFlagsEnvFallback(t *testing.T) {
	env := envOf(map[string]string{
		"TADA_DATA":  "/tmp/seed.json",
		"TADA_THEME": "neon",
		"TADA_IDS":   "random",
		"TADA_COLOR": "always",
	})

	opt, _, err := cli.ParseFlags([]string{"ls"}, env)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/seed.json", opt.DataPath)
	assert.Equal(t, "neon", opt.Theme)
	assert.Equal(t, "always", opt.Color)
	assert.IsType(t, store.RandomRange{}, opt.IDs)
}

func TestParseFlagsFlagWinsOverEnv(t *testing.T) {
	env := envOf(map[string]string{
		"TADA_DATA":  "/tmp/env.json",
		"TADA_THEME": "neon",
		"TADA_IDS":   "random",
		"NO_COLOR":   "1",
	})

	opt, args, err := cli.ParseFlags([]string{
		"-data", "/tmp/flag.json", "-theme", "mono", "-ids", "sequence",
		"-color", "always", "-json", "-group", "get", "1",
	}, env)
	require.NoError(t, err)

	assert.Equal(t, []string{"get", "1"}, args)
	assert.Equal(t, "/tmp/flag.json", opt.DataPath)
	assert.Equal(t, "mono", opt.Theme)
	assert.Equal(t, "always", opt.Color)
	assert.Nil(t, opt.IDs)
	assert.True(t, opt.JSON)
	assert.True(t, opt.Group)
}

func TestParseFlagsNoColor(t *testing.T) {
	opt, _, err := cli.ParseFlags(nil, envOf(map[string]string{"NO_COLOR": "1", "TADA_COLOR": "always"}))
	require.NoError(t, err)
	assert.Equal(t, "never", opt.Color)
}

func TestParseFlagsRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{"bad ids flag", []string{"-ids", "uuid"}, nil, "unknown id strategy: uuid"},
		{"bad ids env", nil, map[string]string{"TADA_IDS": "uuid"}, "unknown id strategy: uuid"},
		{"bad color", []string{"-color", "sometimes"}, nil, "unknown color mode: sometimes"},
		{"unknown flag", []string{"-nope"}, nil, "-nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := cli.ParseFlags(tt.args, envOf(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseFlagsHelp(t *testing.T) {
	_, _, err := cli.ParseFlags([]string{"-h"}, envOf(nil))
	assert.True(t, errors.Is(err, flag.ErrHelp))
}
