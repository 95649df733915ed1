package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/andresuchdata/restockd/internal/domain"
)

// WriteCarrierPerformanceCSV writes the carrier performance report.
func WriteCarrierPerformanceCSV(w io.Writer, rows []domain.CarrierPerformance) error {
	cw := csv.NewWriter(w)

	header := []string{
		"carrier_id", "service_level", "total_shipments",
		"avg_delivery_days", "min_delivery_days", "max_delivery_days",
		"avg_delay_days", "on_time_percentage",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.CarrierID,
			r.ServiceLevel,
			strconv.Itoa(r.TotalShipments),
			formatFixed(r.AvgDeliveryDays),
			formatFixed(r.MinDeliveryDays),
			formatFixed(r.MaxDeliveryDays),
			formatFixed(r.AvgDelayDays),
			formatFixed(r.OnTimePercentage),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTopProductsCSV writes the best-seller ranking.
func WriteTopProductsCSV(w io.Writer, rows []domain.TopProduct) error {
	cw := csv.NewWriter(w)

	header := []string{
		"product_id", "product_name", "product_category", "unit_price",
		"total_units_sold", "total_orders", "total_revenue",
		"avg_order_quantity", "unique_customers",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.ProductID,
			r.ProductName,
			r.ProductCategory,
			r.UnitPrice.StringFixed(2),
			strconv.Itoa(r.TotalUnitsSold),
			strconv.Itoa(r.TotalOrders),
			r.TotalRevenue.StringFixed(2),
			formatFixed(r.AvgOrderQuantity),
			strconv.Itoa(r.UniqueCustomers),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteShortagesCSV writes the shortage analysis rows.
func WriteShortagesCSV(w io.Writer, rows []domain.ShortageRow) error {
	cw := csv.NewWriter(w)

	header := []string{
		"warehouse_id", "warehouse_name", "location",
		"product_id", "product_name", "product_category",
		"available_stock", "daily_demand_rate", "demand_last_30_days",
		"days_of_stock", "stock_status",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.WarehouseID,
			r.WarehouseName,
			r.Location,
			r.ProductID,
			r.ProductName,
			r.ProductCategory,
			strconv.Itoa(r.AvailableStock),
			formatFixed(r.DailyDemandRate),
			strconv.Itoa(r.DemandLast30),
			strconv.FormatFloat(r.DaysOfStock, 'f', 1, 64),
			r.StockStatus,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
