package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocoach/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "UI_PORT", "GIN_MODE", "SHUTDOWN_TIMEOUT", "MEMOIZE", "SWEEP_WORKERS", "LOG_LEVEL", "LOG_DEVELOPMENT", "PPROF_PORT", "PPROF_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "8081", cfg.Server.UIPort)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Engine.Memoize)
	assert.Equal(t, 8, cfg.Sweep.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Profiling.Enabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("MEMOIZE", "false")
	t.Setenv("SWEEP_WORKERS", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Engine.Memoize)
	assert.Equal(t, 2, cfg.Sweep.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port not numeric", "PORT", "http"},
		{"port out of range", "UI_PORT", "70000"},
		{"unknown gin mode", "GIN_MODE", "verbose"},
		{"zero workers", "SWEEP_WORKERS", "0"},
		{"unknown log level", "LOG_LEVEL", "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestUnparseableValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("MEMOIZE", "sometimes")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("SWEEP_WORKERS", "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Engine.Memoize)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 8, cfg.Sweep.Workers)
}
