package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	for _, k := range []string{"APP_ENV", "HTTP_PORT", "DATABASE_DSN", "METRICS_ENABLED", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, DefaultDSN, cfg.DatabaseDSN)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, []string{"*"}, cfg.Origins())
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_Environment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_DSN", "/tmp/other.db")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "/tmp/other.db", cfg.DatabaseDSN)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins())
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HTTP_PORT", "eighty")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("HTTP_PORT", "")
	require.NoError(t, os.Unsetenv("HTTP_PORT"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HTTP_PORT=7070\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("HTTP_PORT") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.HTTPPort)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	for _, k := range []string{"APP_ENV", "DATABASE_DSN"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	path := filepath.Join(dir, "wardrobe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app_env: prod\ndatabase_dsn: closet.db\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "closet.db", cfg.DatabaseDSN)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	chdirTemp(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
