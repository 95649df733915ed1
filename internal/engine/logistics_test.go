package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/andresuchdata/restockd/internal/domain"
)

func shipmentRec(warehouse string, shipped time.Time, days int) domain.ShipmentRecord {
	delivered := shipped.AddDate(0, 0, days)
	return domain.ShipmentRecord{
		WarehouseID:  warehouse,
		ShipDate:     shipped,
		DeliveryDate: &delivered,
	}
}

func TestShipmentTimeByWarehouse_Averages(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	shipments := []domain.ShipmentRecord{
		shipmentRec("W01", base, 2),
		shipmentRec("W01", base.AddDate(0, 0, 3), 4),
		shipmentRec("W02", base, 7),
	}

	times := ShipmentTimeByWarehouse(shipments, 5)

	assert.InDelta(t, 3.0, times.Get("W01"), 1e-9)
	assert.InDelta(t, 7.0, times.Get("W02"), 1e-9)
	assert.True(t, times.Known("W01"))
}

func TestShipmentTimeByWarehouse_InTransitExcluded(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	shipments := []domain.ShipmentRecord{
		shipmentRec("W01", base, 4),
		{WarehouseID: "W01", ShipDate: base}, // no delivery date yet
	}

	times := ShipmentTimeByWarehouse(shipments, 5)

	assert.InDelta(t, 4.0, times.Get("W01"), 1e-9)
}

func TestShipmentTimeByWarehouse_DefaultFallback(t *testing.T) {
	// The fallback must be the configured default, never a silent zero.
	times := ShipmentTimeByWarehouse(nil, 5)

	assert.False(t, times.Known("W09"))
	assert.InDelta(t, 5.0, times.Get("W09"), 1e-9)
}

func TestShipmentTimeByWarehouse_NegativeDurationSkipped(t *testing.T) {
	base := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	shipments := []domain.ShipmentRecord{
		shipmentRec("W01", base, -3),
		shipmentRec("W01", base, 6),
	}

	times := ShipmentTimeByWarehouse(shipments, 5)

	assert.InDelta(t, 6.0, times.Get("W01"), 1e-9)
}
