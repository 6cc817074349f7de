package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("API_KEYS", "sk_test_1, sk_test_2")
	t.Setenv("PLATFORM_VERSION", "1.4.0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"sk_test_1", "sk_test_2"}, cfg.APIKeys)
	assert.Equal(t, "1.4.0", cfg.PlatformVersion)
	assert.Equal(t, "us-east-1", cfg.DocsS3Region)
}

func TestLoad_MissingAPIKeys(t *testing.T) {
	t.Setenv("API_KEYS", "")
	t.Setenv("PLATFORM_VERSION", "1.0.0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEYS")
}

func TestLoad_InvalidPlatformVersion(t *testing.T) {
	t.Setenv("API_KEYS", "sk_test_1")
	t.Setenv("PLATFORM_VERSION", "1.0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PLATFORM_VERSION")
}

func TestValidateAPIKey(t *testing.T) {
	cfg := &Config{APIKeys: []string{"sk_a", "sk_b"}}

	assert.True(t, cfg.ValidateAPIKey("sk_a"))
	assert.False(t, cfg.ValidateAPIKey("sk_c"))
	assert.False(t, cfg.ValidateAPIKey(""))
}
