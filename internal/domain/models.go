// internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a registered customer
type Customer struct {
	CustomerID       string    `json:"customer_id" db:"customer_id"`
	CustomerName     string    `json:"customer_name" db:"customer_name"`
	Email            string    `json:"email" db:"email"`
	RegistrationDate time.Time `json:"registration_date" db:"registration_date"`
}

// Product represents a sellable product
type Product struct {
	ProductID       string          `json:"product_id" db:"product_id"`
	ProductName     string          `json:"product_name" db:"product_name"`
	ProductCategory string          `json:"product_category" db:"product_category"`
	UnitPrice       decimal.Decimal `json:"unit_price" db:"unit_price"`
}

// Warehouse represents a stocking location
type Warehouse struct {
	WarehouseID   string `json:"warehouse_id" db:"warehouse_id"`
	WarehouseName string `json:"warehouse_name" db:"warehouse_name"`
	Location      string `json:"location" db:"location"`
	Capacity      int    `json:"capacity" db:"capacity"`
}

// Carrier represents one service level offered by a shipping carrier
type Carrier struct {
	CarrierID       string `json:"carrier_id" db:"carrier_id"`
	ServiceLevel    string `json:"service_level" db:"service_level"`
	AvgDeliveryTime int    `json:"avg_delivery_time" db:"avg_delivery_time"`
}

// Order represents a customer order line
type Order struct {
	OrderID     string    `json:"order_id" db:"order_id"`
	CustomerID  string    `json:"customer_id" db:"customer_id"`
	ProductID   string    `json:"product_id" db:"product_id"`
	OrderDate   time.Time `json:"order_date" db:"order_date"`
	OrderStatus string    `json:"order_status" db:"order_status"`
	Quantity    int       `json:"quantity" db:"quantity"`
}

// InventoryRecord is the stock position of a product at a warehouse
type InventoryRecord struct {
	ProductID        string    `json:"product_id" db:"product_id"`
	WarehouseID      string    `json:"warehouse_id" db:"warehouse_id"`
	StockQuantity    int       `json:"stock_quantity" db:"stock_quantity"`
	ReservedQuantity int       `json:"reserved_quantity" db:"reserved_quantity"`
	LastUpdated      time.Time `json:"last_updated" db:"last_updated"`
}

// Available returns the sellable stock, clamped at zero. Source data does not
// guarantee reserved <= stock.
func (r InventoryRecord) Available() int {
	available := r.StockQuantity - r.ReservedQuantity
	if available < 0 {
		return 0
	}
	return available
}

// Shipment represents an outbound shipment for an order
type Shipment struct {
	ShipmentID        string     `json:"shipment_id" db:"shipment_id"`
	OrderID           string     `json:"order_id" db:"order_id"`
	WarehouseID       string     `json:"warehouse_id" db:"warehouse_id"`
	CarrierID         string     `json:"carrier_id" db:"carrier_id"`
	ServiceLevel      string     `json:"service_level" db:"service_level"`
	ShipmentStatus    string     `json:"shipment_status" db:"shipment_status"`
	ShipDate          time.Time  `json:"ship_date" db:"ship_date"`
	EstimatedDelivery time.Time  `json:"estimated_delivery" db:"estimated_delivery"`
	ActualDelivery    *time.Time `json:"actual_delivery" db:"actual_delivery"`
	TrackingNumber    string     `json:"tracking_number" db:"tracking_number"`
}

// SalesRecord is a historical sale attributed to a product-warehouse pair,
// sourced from orders joined to their shipments.
type SalesRecord struct {
	ProductID   string    `json:"product_id" db:"product_id"`
	WarehouseID string    `json:"warehouse_id" db:"warehouse_id"`
	OrderDate   time.Time `json:"order_date" db:"order_date"`
	Quantity    int       `json:"quantity" db:"quantity"`
}

// ShipmentRecord carries only what the logistics aggregator needs. A nil
// DeliveryDate marks an in-transit shipment.
type ShipmentRecord struct {
	WarehouseID  string     `json:"warehouse_id" db:"warehouse_id"`
	ShipDate     time.Time  `json:"ship_date" db:"ship_date"`
	DeliveryDate *time.Time `json:"delivery_date" db:"delivery_date"`
}

// Recommendation is a derived restocking decision for one product-warehouse
// pair. It is rebuilt from scratch on every engine run and has no identity
// beyond its (ProductID, WarehouseID) key.
type Recommendation struct {
	ProductID           string  `json:"product_id" db:"product_id"`
	WarehouseID         string  `json:"warehouse_id" db:"warehouse_id"`
	SalesVelocity       float64 `json:"sales_velocity" db:"sales_velocity"`
	AvgShipmentTime     float64 `json:"avg_shipment_time" db:"avg_shipment_time"`
	AvailableStock      int     `json:"available_stock" db:"available_stock"`
	SafetyStock         float64 `json:"safety_stock" db:"safety_stock"`
	ReorderPoint        float64 `json:"reorder_point" db:"reorder_point"`
	TargetStock         float64 `json:"target_stock" db:"target_stock"`
	RecommendedQuantity int     `json:"recommended_quantity" db:"recommended_quantity"`
	UrgencyScore        float64 `json:"urgency_score" db:"urgency_score"`
	UrgencyBucket       string  `json:"urgency_bucket" db:"urgency_bucket"`
}
