package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeminiConfig_Defaults(t *testing.T) {
	cfg, err := parseGeminiConfig(envOf(nil))
	require.NoError(t, err)
	assert.False(t, cfg.Enabled())
	assert.Equal(t, "gemini-embedding-001", cfg.EmbeddingModel)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Minute, cfg.RequestTimeout)
}

func TestParseGeminiConfig_Overrides(t *testing.T) {
	cfg, err := parseGeminiConfig(envOf(map[string]string{
		"GEMINI_API_KEY":         " key ",
		"GEMINI_EMBEDDING_MODEL": "text-embedding-004",
		"GEMINI_MAX_RETRIES":     "0",
		"GEMINI_REQUEST_TIMEOUT": "15s",
	}))
	require.NoError(t, err)
	assert.True(t, cfg.Enabled())
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseGeminiConfig_Invalid(t *testing.T) {
	for _, env := range []map[string]string{
		{"GEMINI_MAX_RETRIES": "many"},
		{"GEMINI_MAX_RETRIES": "-2"},
		{"GEMINI_REQUEST_TIMEOUT": "0s"},
		{"GEMINI_REQUEST_TIMEOUT": "later"},
	} {
		_, err := parseGeminiConfig(envOf(env))
		assert.Error(t, err, "%v", env)
	}
}
