package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load is once-per-process, so one test exercises the whole env surface.
func TestLoad_EngineKnobsFromEnv(t *testing.T) {
	t.Setenv("APP_OUTPUT_DIR", t.TempDir())
	t.Setenv("APP_CHART_DIR", t.TempDir())
	t.Setenv("ENGINE_BUFFER_DAYS", "10")
	t.Setenv("ENGINE_WINDOW_DAYS", "60")
	t.Setenv("ENGINE_DEFAULT_SHIPMENT_TIME", "3.5")
	t.Setenv("LOG_LEVEL", "warn")

	cfg := Load()
	require.NotNil(t, cfg)

	params := cfg.Engine.Params()
	assert.Equal(t, 10, params.BufferDays)
	assert.Equal(t, 60, params.WindowDays)
	assert.InDelta(t, 3.5, params.DefaultShipmentTime, 1e-9)
	// Untouched knobs keep their defaults.
	assert.Equal(t, 14, params.SafetyStockDays)
	assert.Equal(t, 30, params.ReplenishDays)

	assert.Equal(t, "warn", cfg.Server.LogLevel)
}

func TestEngineConfigParams_NormalizesZeroValues(t *testing.T) {
	params := EngineConfig{}.Params()

	assert.Equal(t, 30, params.WindowDays)
	assert.Equal(t, 14, params.SafetyStockDays)
	assert.Equal(t, 7, params.BufferDays)
	assert.Equal(t, 30, params.ReplenishDays)
	assert.InDelta(t, 5.0, params.DefaultShipmentTime, 1e-9)
}
