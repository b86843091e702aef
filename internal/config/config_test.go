package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REDIS_ADDR", "")

	path := writeConfig(t, `
[database]
host = "localhost"
user = "salon"
password = "secret"
dbname = "salon"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "UTC", cfg.Schedule.Timezone)
	assert.Equal(t, 30, cfg.Schedule.SatisfactionWindowDays)
	assert.False(t, cfg.Schedule.EnforceEligibility)

	slots := cfg.Schedule.Slots()
	require.Len(t, slots, 10)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("18:00"), slots[9])

	assert.Equal(t, "host=localhost port=5432 user=salon password=secret dbname=salon sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/salon?sslmode=disable")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "redis:6379")

	path := writeConfig(t, `
[server]
http_port = 8081
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "postgres://u:p@db:5432/salon?sslmode=disable", cfg.Database.DSN())
}

func TestLoad_InvalidPortFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/salon")
	t.Setenv("HTTP_PORT", "abc")

	_, err := Load(writeConfig(t, ""))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.Database.URL = "postgres://localhost/salon"
		c.applyDefaults()
		return c
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port out of range", func(c *Config) { c.Server.HTTPPort = 70000 }},
		{"no database", func(c *Config) { c.Database.URL = "" }},
		{"idle exceeds open", func(c *Config) { c.Database.MaxIdleConns = 100 }},
		{"unknown timezone", func(c *Config) { c.Schedule.Timezone = "Mars/Olympus" }},
		{"malformed slot", func(c *Config) { c.Schedule.SlotTimes = []string{"9am"} }},
		{"duplicate slot", func(c *Config) { c.Schedule.SlotTimes = []string{"09:00", "09:00:00"} }},
		{"negative window", func(c *Config) { c.Schedule.SatisfactionWindowDays = -1 }},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
