package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/restockd/internal/domain"
)

func rec(product, warehouse string, qty int, score float64, bucket string) domain.Recommendation {
	return domain.Recommendation{
		ProductID:           product,
		WarehouseID:         warehouse,
		RecommendedQuantity: qty,
		UrgencyScore:        score,
		UrgencyBucket:       bucket,
	}
}

func TestWriteRestockReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRestockReport(&buf, nil))
	assert.Contains(t, buf.String(), "No restocking needed")
}

func TestWriteRestockReport_TopTenCap(t *testing.T) {
	recs := make([]domain.Recommendation, 0, 15)
	for i := 0; i < 15; i++ {
		recs = append(recs, rec("P001", "W01", 10, 50, "High"))
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRestockReport(&buf, recs))

	out := buf.String()
	assert.Contains(t, out, "RESTOCKING RECOMMENDATIONS (15 pairs flagged)")
	assert.Contains(t, out, "Top 10 most urgent:")
}

func TestWriteRestockReport_WarehouseSummary(t *testing.T) {
	recs := []domain.Recommendation{
		rec("P001", "W01", 100, 100, "Critical"),
		rec("P002", "W01", 50, 80, "Very High"),
		rec("P003", "W02", 400, 60, "High"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRestockReport(&buf, recs))

	out := buf.String()
	assert.Contains(t, out, "Per-warehouse summary:")

	// W02 orders more units so it lists first.
	w01 := strings.Index(out[strings.Index(out, "Per-warehouse"):], "W01")
	w02 := strings.Index(out[strings.Index(out, "Per-warehouse"):], "W02")
	assert.Less(t, w02, w01)
}

func TestWriteTopProductsReport_RanksInOrder(t *testing.T) {
	rows := []domain.TopProduct{
		{ProductID: "P007", ProductName: "Toys Item 007", ProductCategory: "Toys",
			TotalUnitsSold: 120, TotalOrders: 18, TotalRevenue: decimal.NewFromInt(9000), UniqueCustomers: 14},
		{ProductID: "P002", ProductName: "Beauty Item 002", ProductCategory: "Beauty",
			TotalUnitsSold: 90, TotalOrders: 11, TotalRevenue: decimal.NewFromInt(4500), UniqueCustomers: 9},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTopProductsReport(&buf, rows))

	out := buf.String()
	assert.Contains(t, out, "TOP SELLING PRODUCTS")
	assert.Contains(t, out, "9000.00")
	assert.Less(t, strings.Index(out, "P007"), strings.Index(out, "P002"))
}

func TestWriteTopProductsReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTopProductsReport(&buf, nil))
	assert.Contains(t, buf.String(), "No orders in the window.")
}

func TestWriteShortageReport_CountsAndFiltersAdequate(t *testing.T) {
	rows := []domain.ShortageRow{
		{WarehouseID: "W01", ProductID: "P001", StockStatus: domain.StockOutOfStock},
		{WarehouseID: "W01", ProductID: "P002", StockStatus: domain.StockCritical, DaysOfStock: 3.5},
		{WarehouseID: "W02", ProductID: "P003", StockStatus: domain.StockAdequate, DaysOfStock: 90},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteShortageReport(&buf, rows))

	out := buf.String()
	assert.Contains(t, out, "OUT_OF_STOCK  1")
	assert.Contains(t, out, "ADEQUATE      1")
	// Adequate rows stay out of the detail table.
	assert.NotContains(t, out, "P003")
}
