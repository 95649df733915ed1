// Package report renders engine output as a human-readable console report.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/andresuchdata/restockd/internal/domain"
)

const topN = 10

// WriteRestockReport prints the ranked top restocks followed by a
// per-warehouse rollup. Recommendations are expected to arrive already
// sorted by urgency.
func WriteRestockReport(w io.Writer, recs []domain.Recommendation) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "No restocking needed. All product-warehouse pairs are above their reorder points.")
		return err
	}

	fmt.Fprintf(w, "RESTOCKING RECOMMENDATIONS (%d pairs flagged)\n", len(recs))
	fmt.Fprintf(w, "%s\n\n", divider(60))

	limit := topN
	if len(recs) < limit {
		limit = len(recs)
	}
	fmt.Fprintf(w, "Top %d most urgent:\n", limit)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tPRODUCT\tWAREHOUSE\tAVAILABLE\tREORDER PT\tORDER QTY\tURGENCY")
	for i, r := range recs[:limit] {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.1f\t%d\t%.1f (%s)\n",
			i+1, r.ProductID, r.WarehouseID,
			r.AvailableStock, r.ReorderPoint, r.RecommendedQuantity,
			r.UrgencyScore, r.UrgencyBucket)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nPer-warehouse summary:\n")
	return writeWarehouseSummary(w, recs)
}

type warehouseTotals struct {
	warehouseID string
	pairs       int
	totalUnits  int
	critical    int
}

func writeWarehouseSummary(w io.Writer, recs []domain.Recommendation) error {
	byWarehouse := make(map[string]*warehouseTotals)
	for _, r := range recs {
		t, ok := byWarehouse[r.WarehouseID]
		if !ok {
			t = &warehouseTotals{warehouseID: r.WarehouseID}
			byWarehouse[r.WarehouseID] = t
		}
		t.pairs++
		t.totalUnits += r.RecommendedQuantity
		if r.UrgencyBucket == "Critical" {
			t.critical++
		}
	}

	totals := make([]*warehouseTotals, 0, len(byWarehouse))
	for _, t := range byWarehouse {
		totals = append(totals, t)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].totalUnits != totals[j].totalUnits {
			return totals[i].totalUnits > totals[j].totalUnits
		}
		return totals[i].warehouseID < totals[j].warehouseID
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WAREHOUSE\tPAIRS FLAGGED\tUNITS TO ORDER\tCRITICAL")
	for _, t := range totals {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", t.warehouseID, t.pairs, t.totalUnits, t.critical)
	}
	return tw.Flush()
}

// WriteCarrierReport prints the carrier performance table.
func WriteCarrierReport(w io.Writer, rows []domain.CarrierPerformance) error {
	fmt.Fprintf(w, "CARRIER PERFORMANCE (delivered shipments)\n%s\n", divider(60))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CARRIER\tSERVICE\tSHIPMENTS\tAVG DAYS\tAVG DELAY\tON TIME %")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\t%.2f\t%.1f\n",
			r.CarrierID, r.ServiceLevel, r.TotalShipments,
			r.AvgDeliveryDays, r.AvgDelayDays, r.OnTimePercentage)
	}
	return tw.Flush()
}

// WriteTopProductsReport prints the best-seller ranking.
func WriteTopProductsReport(w io.Writer, rows []domain.TopProduct) error {
	fmt.Fprintf(w, "TOP SELLING PRODUCTS (trailing 90 days)\n%s\n", divider(60))
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No orders in the window.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tPRODUCT\tCATEGORY\tUNITS\tORDERS\tREVENUE\tCUSTOMERS")
	for i, r := range rows {
		fmt.Fprintf(tw, "%d\t%s (%s)\t%s\t%d\t%d\t%s\t%d\n",
			i+1, r.ProductName, r.ProductID, r.ProductCategory,
			r.TotalUnitsSold, r.TotalOrders, r.TotalRevenue.StringFixed(2), r.UniqueCustomers)
	}
	return tw.Flush()
}

// WriteShortageReport prints the shortage rows grouped by severity counts.
func WriteShortageReport(w io.Writer, rows []domain.ShortageRow) error {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.StockStatus]++
	}

	fmt.Fprintf(w, "STOCK SHORTAGE ANALYSIS (%d positions)\n%s\n", len(rows), divider(60))
	for _, status := range []string{domain.StockOutOfStock, domain.StockCritical, domain.StockLow, domain.StockAdequate} {
		fmt.Fprintf(w, "  %-13s %d\n", status, counts[status])
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WAREHOUSE\tPRODUCT\tAVAILABLE\tDAYS OF STOCK\tSTATUS")
	for _, r := range rows {
		if r.StockStatus == domain.StockAdequate {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%s\n",
			r.WarehouseID, r.ProductID, r.AvailableStock, r.DaysOfStock, r.StockStatus)
	}
	return tw.Flush()
}

func divider(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '='
	}
	return string(b)
}
