package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirdesai22/staffing-service/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ADDR", "POSTGRES_DSN", "ALLOWED_ORIGINS", "LOG_LEVEL", "SEED_DATA", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("SEED_DATA", "true")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, 50, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
}

func TestLoadConfig_FileOverlay(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
addr: ":7000"
log_level: debug
shutdown_timeout: 3s
db:
  max_open_conns: 8
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 8, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5, cfg.DB.MaxIdleConns)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Addr:            ":8000",
			PostgresDSN:     "host=localhost",
			LogLevel:        "info",
			LogFormat:       "json",
			ShutdownTimeout: time.Second,
			DB:              config.DBConfig{MaxOpenConns: 1, ConnMaxLifetime: time.Minute},
		}
	}
	testCases := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *config.Config) {}},
		{name: "empty dsn", mutate: func(c *config.Config) { c.PostgresDSN = " " }, wantErr: "postgres_dsn"},
		{name: "bad level", mutate: func(c *config.Config) { c.LogLevel = "trace" }, wantErr: "log_level"},
		{name: "bad format", mutate: func(c *config.Config) { c.LogFormat = "xml" }, wantErr: "log_format"},
		{name: "zero shutdown", mutate: func(c *config.Config) { c.ShutdownTimeout = 0 }, wantErr: "shutdown_timeout"},
		{name: "zero pool", mutate: func(c *config.Config) { c.DB.MaxOpenConns = 0 }, wantErr: "max_open_conns"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
