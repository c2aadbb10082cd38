package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PositionalPath(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-log-level", "DEBUG", "-config", "p.hcl", "img/cat.png"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "img/cat.png", cfg.InputPath)
	assert.Equal(t, "p.hcl", cfg.ProfilePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.LogFormat, "unset flags leave room for the profile")
	assert.Empty(t, out.String())
}

func TestParse_Help(t *testing.T) {
	for _, arg := range []string{"-h", "-help", "--help"} {
		t.Run(arg, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse([]string{arg}, out)
			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Nil(t, cfg)
			assert.Contains(t, out.String(), "Usage:")
		})
	}
}

func TestParse_Version(t *testing.T) {
	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-version"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Equal(t, "pixelsort "+Version+"\n", out.String())
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "no path", args: []string{}, contains: "missing required argument"},
		{name: "two paths", args: []string{"a.png", "b.png"}, contains: "exactly one image path"},
		{name: "unknown flag", args: []string{"--threshold", "0.3", "a.png"}, contains: "flag provided but not defined"},
		{name: "bad log format", args: []string{"-log-format", "yaml", "a.png"}, contains: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "loud", "a.png"}, contains: "invalid log-level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.False(t, shouldExit)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.contains)
		})
	}
}
