package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCfg_Defaults(t *testing.T) {
	cfg, err := LoadCfg(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 1500*time.Millisecond, cfg.Session.ErrorResetDelay)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Kafka.Enabled)
	assert.False(t, cfg.ClickHouse.Enabled)
	assert.Equal(t, "keypadcalc.computations", cfg.Kafka.Topic)
}

func TestLoadCfg_EnvAndDotenv(t *testing.T) {
	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("CALCULATOR_REDIS_ENABLED=true\nCALCULATOR_SESSION_TTL=5m\n"), 0o600))
	t.Setenv("CALCULATOR_SERVER_PORT", "9999")

	cfg, err := LoadCfg(env)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("CALCULATOR_REDIS_ENABLED")
		os.Unsetenv("CALCULATOR_SESSION_TTL")
	})

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
}
