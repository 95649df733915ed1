package engine

import (
	"time"

	"github.com/andresuchdata/restockd/internal/domain"
)

// VelocityByPair aggregates units sold per day for every product-warehouse
// pair over the trailing window ending at now. Records dated before the
// window cutoff are ignored; pairs with no sales simply do not appear in the
// result, which downstream code treats as velocity zero.
func VelocityByPair(sales []domain.SalesRecord, now time.Time, windowDays int) map[PairKey]float64 {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	cutoff := now.AddDate(0, 0, -windowDays)

	totals := make(map[PairKey]int)
	for _, rec := range sales {
		if rec.OrderDate.Before(cutoff) || rec.OrderDate.After(now) {
			continue
		}
		key := PairKey{ProductID: rec.ProductID, WarehouseID: rec.WarehouseID}
		totals[key] += rec.Quantity
	}

	velocity := make(map[PairKey]float64, len(totals))
	for key, total := range totals {
		velocity[key] = float64(total) / float64(windowDays)
	}

	return velocity
}
