package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ADMIN_USERNAME", "admin-user")
	t.Setenv("ADMIN_PASSWORD", "correct-horse-battery")
	t.Setenv("SESSION_SECRET", strings.Repeat("s", 32))
	t.Setenv("NOTION_API_KEY", "secret_key")
	t.Setenv("NOTION_DATABASE_ID", strings.Repeat("a", 32))
	t.Setenv("NOTION_ITEMS_DATABASE_ID", strings.Repeat("b", 32))
}

func TestLoad_Defaults(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, EnvDevelopment, cfg.AppEnv)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 24*time.Hour, cfg.SessionDuration)
	assert.Equal(t, 5*time.Minute, cfg.InvoiceCacheTTL)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	setValidEnv(t)
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("SESSION_DURATION", "1h")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, time.Hour, cfg.SessionDuration)
	assert.True(t, cfg.CacheEnabled())
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"short username", "ADMIN_USERNAME", "ab"},
		{"short password", "ADMIN_PASSWORD", "1234567"},
		{"short secret", "SESSION_SECRET", strings.Repeat("s", 31)},
		{"missing notion key", "NOTION_API_KEY", ""},
		{"bad database id", "NOTION_DATABASE_ID", "not-hex"},
		{"uppercase database id", "NOTION_DATABASE_ID", strings.Repeat("A", 32)},
		{"bad items database id", "NOTION_ITEMS_DATABASE_ID", "1234"},
		{"bad env", "APP_ENV", "staging"},
		{"zero duration", "SESSION_DURATION", "0s"},
		{"negative duration", "SESSION_DURATION", "-1h"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setValidEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
