package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"SERVICE_NAME", "HTTP_PORT", "POSTGRES_DSN", "MESSAGES_PATH", "DEFAULT_LOCALE", "WATCH_MESSAGES", "AUTO_MIGRATE"} {
		t.Setenv(name, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "apikit", cfg.ServiceName)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Empty(t, cfg.PostgresDSN)
	assert.False(t, cfg.WatchMessages)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVICE_NAME", "contacts")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("POSTGRES_DSN", " postgres://localhost/apikit ")
	t.Setenv("MESSAGES_PATH", "/etc/apikit/messages.yaml")
	t.Setenv("DEFAULT_LOCALE", "it")
	t.Setenv("WATCH_MESSAGES", "yes")
	t.Setenv("AUTO_MIGRATE", "on")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "contacts", cfg.ServiceName)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "postgres://localhost/apikit", cfg.PostgresDSN)
	assert.Equal(t, "/etc/apikit/messages.yaml", cfg.MessagesPath)
	assert.Equal(t, "it", cfg.DefaultLocale)
	assert.True(t, cfg.WatchMessages)
	assert.True(t, cfg.AutoMigrate)
}

func TestWatchNeedsCatalogFile(t *testing.T) {
	t.Setenv("MESSAGES_PATH", "")
	t.Setenv("WATCH_MESSAGES", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.WatchMessages)
}

func TestEnvBool(t *testing.T) {
	t.Setenv("FLAG", "garbage")
	assert.True(t, envBool("FLAG", true))
	t.Setenv("FLAG", "OFF")
	assert.False(t, envBool("FLAG", true))
}
