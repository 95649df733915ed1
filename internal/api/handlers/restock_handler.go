package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/andresuchdata/restockd/internal/engine"
	"github.com/andresuchdata/restockd/internal/service"
)

type RestockHandler struct {
	service  *service.RestockService
	defaults engine.Params
}

// NewRestockHandler builds the handler with the environment-provided engine
// defaults; query parameters override them per request.
func NewRestockHandler(service *service.RestockService, defaults engine.Params) *RestockHandler {
	return &RestockHandler{service: service, defaults: defaults.Normalize()}
}

// parseParams reads the engine overrides from query parameters. Absent or
// invalid values fall back to the configured defaults.
func (h *RestockHandler) parseParams(c *gin.Context) engine.Params {
	params := h.defaults

	if v, err := strconv.Atoi(c.Query("window_days")); err == nil {
		params.WindowDays = v
	}
	if v, err := strconv.Atoi(c.Query("safety_stock_days")); err == nil {
		params.SafetyStockDays = v
	}
	if v, err := strconv.Atoi(c.Query("buffer_days")); err == nil {
		params.BufferDays = v
	}
	if v, err := strconv.Atoi(c.Query("replenish_days")); err == nil {
		params.ReplenishDays = v
	}
	if v, err := strconv.ParseFloat(c.Query("default_shipment_time"), 64); err == nil {
		params.DefaultShipmentTime = v
	}

	return params.Normalize()
}

// GetRecommendations returns the ranked restocking list.
func (h *RestockHandler) GetRecommendations(c *gin.Context) {
	params := h.parseParams(c)

	recs, err := h.service.Recommendations(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"params": gin.H{
			"window_days":           params.WindowDays,
			"safety_stock_days":     params.SafetyStockDays,
			"buffer_days":           params.BufferDays,
			"replenish_days":        params.ReplenishDays,
			"default_shipment_time": params.DefaultShipmentTime,
		},
		"count":           len(recs),
		"recommendations": recs,
	})
}
