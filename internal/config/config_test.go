package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv(EnvAPIKey, "bb_test_key")
	t.Setenv(EnvProjectID, "proj_123")
	t.Setenv(EnvContextID, "ctx_456")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bb_test_key", cfg.APIKey)
	assert.Equal(t, "proj_123", cfg.ProjectID)
	assert.Equal(t, "ctx_456", cfg.ContextID)
	assert.Equal(t, DefaultHashtag, cfg.Hashtag)
	assert.Equal(t, 25*time.Second, cfg.LoginTimeout)
	assert.Equal(t, DefaultTopThemes, cfg.TopThemes)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvProjectID, "proj_123")

	_, err := Load()
	var missing *MissingVarError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, EnvAPIKey, missing.Name)
	assert.Contains(t, err.Error(), EnvAPIKey)
}

func TestLoadMissingProjectID(t *testing.T) {
	t.Setenv(EnvAPIKey, "bb_test_key")
	t.Setenv(EnvProjectID, "")

	_, err := Load()
	var missing *MissingVarError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, EnvProjectID, missing.Name)
}

func TestLoadContextIDOptional(t *testing.T) {
	t.Setenv(EnvAPIKey, "bb_test_key")
	t.Setenv(EnvProjectID, "proj_123")
	t.Setenv(EnvContextID, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.ContextID)
}
