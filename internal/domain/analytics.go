package domain

import "github.com/shopspring/decimal"

// CarrierPerformance aggregates delivery statistics for one carrier and
// service level over completed shipments.
type CarrierPerformance struct {
	CarrierID        string  `json:"carrier_id" db:"carrier_id"`
	ServiceLevel     string  `json:"service_level" db:"service_level"`
	TotalShipments   int     `json:"total_shipments" db:"total_shipments"`
	AvgDeliveryDays  float64 `json:"avg_delivery_days" db:"avg_delivery_days"`
	MinDeliveryDays  float64 `json:"min_delivery_days" db:"min_delivery_days"`
	MaxDeliveryDays  float64 `json:"max_delivery_days" db:"max_delivery_days"`
	AvgDelayDays     float64 `json:"avg_delay_days" db:"avg_delay_days"`
	OnTimePercentage float64 `json:"on_time_percentage" db:"on_time_percentage"`
}

// TopProduct is one row of the best-seller ranking over a trailing quarter.
type TopProduct struct {
	ProductID        string          `json:"product_id" db:"product_id"`
	ProductName      string          `json:"product_name" db:"product_name"`
	ProductCategory  string          `json:"product_category" db:"product_category"`
	UnitPrice        decimal.Decimal `json:"unit_price" db:"unit_price"`
	TotalUnitsSold   int             `json:"total_units_sold" db:"total_units_sold"`
	TotalOrders      int             `json:"total_orders" db:"total_orders"`
	TotalRevenue     decimal.Decimal `json:"total_revenue" db:"total_revenue"`
	AvgOrderQuantity float64         `json:"avg_order_quantity" db:"avg_order_quantity"`
	UniqueCustomers  int             `json:"unique_customers" db:"unique_customers"`
}

// ShortageRow describes the stock position of one product at one warehouse
// relative to its recent demand rate.
type ShortageRow struct {
	WarehouseID     string  `json:"warehouse_id" db:"warehouse_id"`
	WarehouseName   string  `json:"warehouse_name" db:"warehouse_name"`
	Location        string  `json:"location" db:"location"`
	ProductID       string  `json:"product_id" db:"product_id"`
	ProductName     string  `json:"product_name" db:"product_name"`
	ProductCategory string  `json:"product_category" db:"product_category"`
	AvailableStock  int     `json:"available_stock" db:"available_stock"`
	DailyDemandRate float64 `json:"daily_demand_rate" db:"daily_demand_rate"`
	DemandLast30    int     `json:"demand_last_30_days" db:"demand_last_30_days"`
	DaysOfStock     float64 `json:"days_of_stock" db:"days_of_stock"`
	StockStatus     string  `json:"stock_status" db:"stock_status"`
}

// SupplyChainInsights is the derived executive summary over the three
// analytics views.
type SupplyChainInsights struct {
	TopProductRevenue    decimal.Decimal `json:"top_product_revenue"`
	AvgDeliveryDays      float64         `json:"avg_delivery_days"`
	CriticalShortages    int             `json:"critical_shortages"`
	BestCarrier          string          `json:"best_carrier"`
	WorstCarrier         string          `json:"worst_carrier"`
	DominantCategory     string          `json:"dominant_category"`
	OutOfStockWarehouses []string        `json:"out_of_stock_warehouses"`
}
