package domain

// Order statuses
const (
	OrderPending   = "Pending"
	OrderShipped   = "Shipped"
	OrderDelivered = "Delivered"
	OrderCanceled  = "Canceled"
)

// Shipment statuses
const (
	ShipmentInTransit = "In Transit"
	ShipmentDelivered = "Delivered"
	ShipmentDelayed   = "Delayed"
)

// Carrier service levels
const (
	ServiceStandard  = "Standard"
	ServiceExpress   = "Express"
	ServiceOvernight = "Overnight"
)

// Stock status buckets used by the shortage analysis, ordered by severity.
const (
	StockOutOfStock = "OUT_OF_STOCK"
	StockCritical   = "CRITICAL"
	StockLow        = "LOW"
	StockAdequate   = "ADEQUATE"
)

var stockStatusRank = map[string]int{
	StockOutOfStock: 1,
	StockCritical:   2,
	StockLow:        3,
	StockAdequate:   4,
}

// StockStatusRank returns the sort rank for a stock status, most severe first.
// Unknown statuses sort last.
func StockStatusRank(status string) int {
	if rank, ok := stockStatusRank[status]; ok {
		return rank
	}

	return len(stockStatusRank) + 1
}
