package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/restockd/internal/domain"
)

func fixedShipTimes(avgs map[string]float64, fallback float64) ShipmentTimes {
	return ShipmentTimes{avgs: avgs, defaultDays: fallback}
}

func inventoryRec(product, warehouse string, stock, reserved int) domain.InventoryRecord {
	return domain.InventoryRecord{
		ProductID:        product,
		WarehouseID:      warehouse,
		StockQuantity:    stock,
		ReservedQuantity: reserved,
	}
}

// Reference scenario: velocity 10/day, shipment time 5 days, 40 available.
// reorder_point = 10*(5+7) = 120, safety = 140, target = 140+300 = 440.
func TestBuildRecommendations_ReferenceScenario(t *testing.T) {
	inventory := []domain.InventoryRecord{inventoryRec("P001", "W01", 40, 0)}
	velocity := map[PairKey]float64{{"P001", "W01"}: 10}
	shipTimes := fixedShipTimes(map[string]float64{"W01": 5}, DefaultShipmentTimeDays)

	recs := BuildRecommendations(inventory, velocity, shipTimes, DefaultParams())

	require.Len(t, recs, 1)
	rec := recs[0]
	assert.InDelta(t, 120.0, rec.ReorderPoint, 1e-9)
	assert.InDelta(t, 140.0, rec.SafetyStock, 1e-9)
	assert.InDelta(t, 440.0, rec.TargetStock, 1e-9)
	assert.Equal(t, 400, rec.RecommendedQuantity)
	assert.InDelta(t, 100.0*(120.0-40.0)/120.0, rec.UrgencyScore, 1e-9)
	assert.Equal(t, BucketHigh, rec.UrgencyBucket)
}

func TestBuildRecommendations_AboveReorderPointExcluded(t *testing.T) {
	inventory := []domain.InventoryRecord{inventoryRec("P001", "W01", 500, 0)}
	velocity := map[PairKey]float64{{"P001", "W01"}: 10}
	shipTimes := fixedShipTimes(map[string]float64{"W01": 5}, DefaultShipmentTimeDays)

	recs := BuildRecommendations(inventory, velocity, shipTimes, DefaultParams())

	// needs_reorder is false, so the pair is not emitted at all.
	assert.Empty(t, recs)
}

func TestBuildRecommendations_ZeroVelocityNeverTriggersWhileStocked(t *testing.T) {
	inventory := []domain.InventoryRecord{
		inventoryRec("P001", "W01", 1, 0),
		// reserved > stock clamps available to 0, which does trigger.
		inventoryRec("P002", "W01", 3, 10),
	}
	shipTimes := fixedShipTimes(nil, DefaultShipmentTimeDays)

	recs := BuildRecommendations(inventory, nil, shipTimes, DefaultParams())

	require.Len(t, recs, 1)
	assert.Equal(t, "P002", recs[0].ProductID)
	assert.InDelta(t, 100.0, recs[0].UrgencyScore, 1e-9)
	assert.Equal(t, BucketCritical, recs[0].UrgencyBucket)
	assert.Equal(t, 0, recs[0].RecommendedQuantity)
}

func TestBuildRecommendations_QuantityNeverNegative(t *testing.T) {
	inventory := []domain.InventoryRecord{
		inventoryRec("P001", "W01", 0, 0),
		inventoryRec("P002", "W01", 10, 0),
		inventoryRec("P003", "W01", 100, 90),
	}
	velocity := map[PairKey]float64{
		{"P001", "W01"}: 0.5,
		{"P002", "W01"}: 3,
		{"P003", "W01"}: 1.2,
	}
	shipTimes := fixedShipTimes(map[string]float64{"W01": 4}, DefaultShipmentTimeDays)

	recs := BuildRecommendations(inventory, velocity, shipTimes, DefaultParams())

	for _, rec := range recs {
		assert.GreaterOrEqual(t, rec.RecommendedQuantity, 0, "pair %s/%s", rec.ProductID, rec.WarehouseID)
		assert.GreaterOrEqual(t, rec.UrgencyScore, 0.0)
		assert.LessOrEqual(t, rec.UrgencyScore, 100.0)
	}
}

func TestBuildRecommendations_UsesDefaultShipmentTime(t *testing.T) {
	inventory := []domain.InventoryRecord{inventoryRec("P001", "W77", 5, 0)}
	velocity := map[PairKey]float64{{"P001", "W77"}: 2}
	shipTimes := fixedShipTimes(nil, 5)

	recs := BuildRecommendations(inventory, velocity, shipTimes, DefaultParams())

	require.Len(t, recs, 1)
	// reorder_point = 2 * (5 + 7) with the 5-day fallback.
	assert.InDelta(t, 24.0, recs[0].ReorderPoint, 1e-9)
	assert.InDelta(t, 5.0, recs[0].AvgShipmentTime, 1e-9)
}

func TestBuildRecommendations_NormalizesParams(t *testing.T) {
	inventory := []domain.InventoryRecord{inventoryRec("P001", "W01", 0, 0)}
	velocity := map[PairKey]float64{{"P001", "W01"}: 1}
	shipTimes := fixedShipTimes(map[string]float64{"W01": 5}, 0)

	recs := BuildRecommendations(inventory, velocity, shipTimes, Params{})

	require.Len(t, recs, 1)
	assert.InDelta(t, 12.0, recs[0].ReorderPoint, 1e-9)
	assert.InDelta(t, 14.0, recs[0].SafetyStock, 1e-9)
}

func TestBuildRecommendations_EmptyInventory(t *testing.T) {
	recs := BuildRecommendations(nil, nil, fixedShipTimes(nil, 5), DefaultParams())
	assert.Empty(t, recs)
}
