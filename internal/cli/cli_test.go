package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/coursegridgo/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}

	cfg, exit, err := Parse([]string{
		"-field", "north", "-position", "0", "-parallel",
		"-format", "JSON", "-output", "out.json", "-log-level", "DEBUG", "fields/",
	}, out)

	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "fields/", cfg.ConfigPath)
	assert.Equal(t, "north", cfg.Field)
	require.NotNil(t, cfg.Position, "an explicit 0 is an override")
	assert.Equal(t, 0, *cfg.Position)
	assert.True(t, cfg.Parallel)
	assert.False(t, cfg.All)
	assert.Equal(t, export.FormatJSON, cfg.Format)
	assert.Equal(t, "out.json", cfg.OutputPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParse_ConfigFlagsTakePrecedence(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"-c", "short.hcl", "positional.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "short.hcl", cfg.ConfigPath)

	cfg, _, err = Parse([]string{"-config", "long.hcl", "-c", "short.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "long.hcl", cfg.ConfigPath)
	assert.Nil(t, cfg.Position)
	assert.Equal(t, export.FormatYAML, cfg.Format)
}

func TestParse_UsageWithoutPath(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}

	cfg, exit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	_, exit, err := Parse([]string{"-h"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.True(t, exit)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown flag", args: []string{"-nope"}, want: "flag provided but not defined"},
		{name: "bad format", args: []string{"-format", "xml", "a.hcl"}, want: "invalid format"},
		{name: "bad log format", args: []string{"-log-format", "xml", "a.hcl"}, want: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "loud", "a.hcl"}, want: "invalid log-level"},
		{name: "position with all", args: []string{"-all", "-position", "1", "a.hcl"}, want: "all positions"},
		{name: "non-numeric position", args: []string{"-position", "left", "a.hcl"}, want: "invalid value"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, exit, err := Parse(tc.args, &bytes.Buffer{})

			assert.False(t, exit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
