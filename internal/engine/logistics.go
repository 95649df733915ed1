package engine

import "github.com/andresuchdata/restockd/internal/domain"

const hoursPerDay = 24

// ShipmentTimeByWarehouse computes the mean shipment duration in days per
// warehouse over completed shipments. Records without a delivery date are
// in transit and do not count. The returned lookup falls back to defaultDays
// for warehouses with zero completed shipments, so the fallback is explicit
// rather than a silent zero.
func ShipmentTimeByWarehouse(shipments []domain.ShipmentRecord, defaultDays float64) ShipmentTimes {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, rec := range shipments {
		if rec.DeliveryDate == nil {
			continue
		}
		duration := rec.DeliveryDate.Sub(rec.ShipDate).Hours() / hoursPerDay
		if duration < 0 {
			// Delivery before ship date is corrupt data; skip the record.
			continue
		}
		sums[rec.WarehouseID] += duration
		counts[rec.WarehouseID]++
	}

	avgs := make(map[string]float64, len(sums))
	for warehouseID, sum := range sums {
		avgs[warehouseID] = sum / float64(counts[warehouseID])
	}

	return ShipmentTimes{avgs: avgs, defaultDays: defaultDays}
}

// ShipmentTimes resolves average shipment durations with a documented
// default for unseen warehouses.
type ShipmentTimes struct {
	avgs        map[string]float64
	defaultDays float64
}

// Get returns the average shipment time for a warehouse, or the configured
// default when no completed shipments exist for it.
func (s ShipmentTimes) Get(warehouseID string) float64 {
	if avg, ok := s.avgs[warehouseID]; ok {
		return avg
	}
	return s.defaultDays
}

// Known reports whether the warehouse has at least one completed shipment.
func (s ShipmentTimes) Known(warehouseID string) bool {
	_, ok := s.avgs[warehouseID]
	return ok
}
