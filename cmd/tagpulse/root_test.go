package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	assert.Equal(t, "tagpulse", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "run")
	assert.Contains(t, names, "history")
}

func TestRunCmdFlags(t *testing.T) {
	t.Parallel()

	cmd := NewRunCmd()

	hashtag := cmd.Flags().Lookup("hashtag")
	require.NotNil(t, hashtag)
	assert.Equal(t, "Tariffs", hashtag.DefValue)
	assert.Equal(t, "t", hashtag.Shorthand)

	timeout := cmd.Flags().Lookup("login-timeout")
	require.NotNil(t, timeout)
	assert.Equal(t, "25s", timeout.DefValue)

	for _, name := range []string{"out-dir", "themes", "archive", "top-themes"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestHistoryCmdFlags(t *testing.T) {
	t.Parallel()

	cmd := NewHistoryCmd()
	require.NotNil(t, cmd.Flags().Lookup("archive"))
	require.NotNil(t, cmd.Flags().Lookup("hashtag"))
	require.NotNil(t, cmd.Flags().Lookup("limit"))
}
