package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/andresuchdata/restockd/internal/engine"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestParseParams_UsesConfiguredDefaults(t *testing.T) {
	h := NewRestockHandler(nil, engine.Params{BufferDays: 10, WindowDays: 60})

	params := h.parseParams(testContext(t, "/api/v1/restock/recommendations"))

	assert.Equal(t, 10, params.BufferDays)
	assert.Equal(t, 60, params.WindowDays)
	// Knobs the defaults leave unset normalize to the canonical values.
	assert.Equal(t, engine.DefaultSafetyStockDays, params.SafetyStockDays)
	assert.InDelta(t, engine.DefaultShipmentTimeDays, params.DefaultShipmentTime, 1e-9)
}

func TestParseParams_QueryOverridesDefaults(t *testing.T) {
	h := NewRestockHandler(nil, engine.Params{BufferDays: 10})

	params := h.parseParams(testContext(t,
		"/api/v1/restock/recommendations?buffer_days=3&default_shipment_time=2.5"))

	assert.Equal(t, 3, params.BufferDays)
	assert.InDelta(t, 2.5, params.DefaultShipmentTime, 1e-9)
}

func TestParseParams_InvalidQueryFallsBack(t *testing.T) {
	h := NewRestockHandler(nil, engine.Params{BufferDays: 10})

	params := h.parseParams(testContext(t,
		"/api/v1/restock/recommendations?buffer_days=soon&window_days=-5"))

	assert.Equal(t, 10, params.BufferDays)
	// A negative override is degenerate and normalizes to the default.
	assert.Equal(t, engine.DefaultWindowDays, params.WindowDays)
}
