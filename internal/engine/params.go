// Package engine implements the restocking recommendation pipeline: sales
// velocity aggregation, shipment time averaging, reorder point math and
// urgency ranking. All functions are pure; the reference time is always an
// explicit argument so batch runs are reproducible.
package engine

// Canonical engine defaults. Every one of them can be overridden per run
// via flags, query parameters, or environment.
const (
	DefaultWindowDays       = 30
	DefaultSafetyStockDays  = 14
	DefaultBufferDays       = 7
	DefaultReplenishDays    = 30
	DefaultShipmentTimeDays = 5.0
)

// Params carries the tunable constants for a single engine run.
type Params struct {
	WindowDays          int     // trailing sales window for velocity
	SafetyStockDays     int     // days of demand held as safety stock
	BufferDays          int     // reorder buffer on top of shipment time
	ReplenishDays       int     // replenishment planning horizon
	DefaultShipmentTime float64 // fallback when a warehouse has no completed shipments
}

// DefaultParams returns the canonical parameter set.
func DefaultParams() Params {
	return Params{
		WindowDays:          DefaultWindowDays,
		SafetyStockDays:     DefaultSafetyStockDays,
		BufferDays:          DefaultBufferDays,
		ReplenishDays:       DefaultReplenishDays,
		DefaultShipmentTime: DefaultShipmentTimeDays,
	}
}

// Normalize replaces non-positive values with the canonical defaults so a
// partially populated Params never produces a degenerate run.
func (p Params) Normalize() Params {
	if p.WindowDays <= 0 {
		p.WindowDays = DefaultWindowDays
	}
	if p.SafetyStockDays <= 0 {
		p.SafetyStockDays = DefaultSafetyStockDays
	}
	if p.BufferDays <= 0 {
		p.BufferDays = DefaultBufferDays
	}
	if p.ReplenishDays <= 0 {
		p.ReplenishDays = DefaultReplenishDays
	}
	if p.DefaultShipmentTime <= 0 {
		p.DefaultShipmentTime = DefaultShipmentTimeDays
	}
	return p
}

// PairKey identifies a product at a warehouse.
type PairKey struct {
	ProductID   string
	WarehouseID string
}
