package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"WIZARDWARS_CONTENT_DIR", "WIZARDWARS_CREDENTIAL_ENV", "WIZARDWARS_CREDENTIAL_FILE",
		"DIALOGUE_BASE_URL", "DIALOGUE_MODEL", "DIALOGUE_TIMEOUT_SECONDS",
		"WIZARDWARS_DIALOGUE_ENABLED", "REDIS_URL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "content", cfg.Content.Dir)
	assert.Equal(t, "DIALOGUE_API_KEY", cfg.Dialogue.CredentialEnvVar)
	assert.Equal(t, "config/api_key.txt", cfg.Dialogue.CredentialFile)
	assert.Equal(t, "gemini-2.5-pro", cfg.Dialogue.Model)
	assert.Equal(t, 30*time.Second, cfg.Dialogue.Timeout)
	assert.False(t, cfg.Dialogue.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WIZARDWARS_CONTENT_DIR", "/srv/content")
	t.Setenv("DIALOGUE_MODEL", "counsel-large")
	t.Setenv("DIALOGUE_TIMEOUT_SECONDS", "5")
	t.Setenv("WIZARDWARS_DIALOGUE_ENABLED", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/content", cfg.Content.Dir)
	assert.Equal(t, "counsel-large", cfg.Dialogue.Model)
	assert.Equal(t, 5*time.Second, cfg.Dialogue.Timeout)
	assert.True(t, cfg.Dialogue.Enabled)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("DIALOGUE_TIMEOUT_SECONDS", "soon")
	t.Setenv("WIZARDWARS_DIALOGUE_ENABLED", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Dialogue.Timeout)
	assert.False(t, cfg.Dialogue.Enabled)
}
