package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8002, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, 60*time.Minute, cfg.SnapshotMaxAge)
	assert.Equal(t, "@every 5m", cfg.WatchdogSchedule)
	assert.InDelta(t, 13.15, cfg.Rates.CDI, 1e-9)
	assert.InDelta(t, 4.5, cfg.Rates.IPCA, 1e-9)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("RATE_CDI", "10.65")
	t.Setenv("SNAPSHOT_MAX_AGE_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DevMode)
	assert.InDelta(t, 10.65, cfg.Rates.CDI, 1e-9)
	assert.Equal(t, 15*time.Minute, cfg.SnapshotMaxAge)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("RATE_CDI", "also-not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8002, cfg.Port)
	assert.InDelta(t, 13.15, cfg.Rates.CDI, 1e-9)
}

func TestValidate_RejectsBadPort(t *testing.T) {
	cfg := &Config{Port: -1, SnapshotMaxAge: time.Minute}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 70000, SnapshotMaxAge: time.Minute}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveMaxAge(t *testing.T) {
	cfg := &Config{Port: 8002, SnapshotMaxAge: 0}
	assert.Error(t, cfg.Validate())
}
