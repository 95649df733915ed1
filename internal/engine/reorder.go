package engine

import (
	"math"

	"github.com/andresuchdata/restockd/internal/domain"
)

// BuildRecommendations runs the reorder math for every inventory pair and
// returns the ranked list of pairs that need restocking.
//
//	safety_stock    = velocity * SafetyStockDays
//	reorder_point   = velocity * (avg_shipment_time + BufferDays)
//	target_stock    = safety_stock + velocity * ReplenishDays
//	needs_reorder   = available <= reorder_point
//	recommended_qty = max(0, target_stock - available)
//
// Available stock is clamped at zero before the comparison, so a pair with
// zero velocity can only trigger when it is fully out of stock. Pairs that
// do not need reordering are not emitted at all.
func BuildRecommendations(
	inventory []domain.InventoryRecord,
	velocity map[PairKey]float64,
	shipTimes ShipmentTimes,
	params Params,
) []domain.Recommendation {
	params = params.Normalize()

	recommendations := make([]domain.Recommendation, 0)
	for _, inv := range inventory {
		key := PairKey{ProductID: inv.ProductID, WarehouseID: inv.WarehouseID}
		pairVelocity := velocity[key]
		avgShipmentTime := shipTimes.Get(inv.WarehouseID)
		available := inv.Available()

		safetyStock := pairVelocity * float64(params.SafetyStockDays)
		reorderPoint := pairVelocity * (avgShipmentTime + float64(params.BufferDays))
		targetStock := safetyStock + pairVelocity*float64(params.ReplenishDays)

		if float64(available) > reorderPoint {
			continue
		}

		recommendedQty := int(math.Ceil(math.Max(0, targetStock-float64(available))))
		score := UrgencyScore(reorderPoint, available)

		recommendations = append(recommendations, domain.Recommendation{
			ProductID:           inv.ProductID,
			WarehouseID:         inv.WarehouseID,
			SalesVelocity:       pairVelocity,
			AvgShipmentTime:     avgShipmentTime,
			AvailableStock:      available,
			SafetyStock:         safetyStock,
			ReorderPoint:        reorderPoint,
			TargetStock:         targetStock,
			RecommendedQuantity: recommendedQty,
			UrgencyScore:        score,
			UrgencyBucket:       UrgencyBucket(score),
		})
	}

	SortByUrgency(recommendations)

	return recommendations
}
