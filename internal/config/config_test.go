package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SERVICE_NAME", "SERVER_PORT", "DATABASE_URL", "DB_RESET_ON_START", "API_URL", "DASHBOARD_CACHE_TTL", "HTTP_CLIENT_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	require.Equal(t, "order-management", cfg.ServiceName)
	require.Equal(t, 8000, cfg.ServerPort)
	require.Equal(t, "database.db", cfg.DatabaseURL)
	require.False(t, cfg.ResetOnStart)
	require.Equal(t, "http://127.0.0.1:8000", cfg.APIURL)
	require.Zero(t, cfg.CacheTTL)
	require.Equal(t, 5*time.Second, cfg.HTTPClientTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_RESET_ON_START", "true")
	t.Setenv("API_URL", "http://orders.local:9090/")
	t.Setenv("DASHBOARD_CACHE_TTL", "30s")

	cfg := Load()
	require.Equal(t, 9090, cfg.ServerPort)
	require.True(t, cfg.ResetOnStart)
	require.Equal(t, "http://orders.local:9090", cfg.APIURL)
	require.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestEnvHelpersFallBackOnGarbage(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_DUR", "soon")

	require.Equal(t, 7, EnvIntDefault("X_INT", 7))
	require.True(t, EnvBoolDefault("X_BOOL", true))
	require.Equal(t, time.Minute, EnvDurationDefault("X_DUR", time.Minute))
}
