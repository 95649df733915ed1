// Package charts renders the analytics views as PNG bar charts.
package charts

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/andresuchdata/restockd/internal/domain"
)

const (
	chartWidth  = 1000
	chartHeight = 600

	marginLeft   = 80.0
	marginRight  = 40.0
	marginTop    = 70.0
	marginBottom = 110.0
)

var (
	colorBackground = color.White
	colorAxis       = color.RGBA{60, 60, 60, 255}
	colorBar        = color.RGBA{66, 133, 244, 255}
	colorBarAlt     = color.RGBA{219, 68, 55, 255}
	colorBarWarn    = color.RGBA{244, 180, 0, 255}
)

type bar struct {
	label string
	value float64
	fill  color.Color
}

// SaveCarrierPerformancePNG draws average delivery days per carrier and
// service level.
func SaveCarrierPerformancePNG(dir string, rows []domain.CarrierPerformance) (string, error) {
	bars := make([]bar, 0, len(rows))
	for _, r := range rows {
		fill := colorBar
		if r.OnTimePercentage < 80 {
			fill = colorBarWarn
		}
		bars = append(bars, bar{
			label: fmt.Sprintf("%s\n%s", r.CarrierID, r.ServiceLevel),
			value: r.AvgDeliveryDays,
			fill:  fill,
		})
	}

	path := filepath.Join(dir, "carrier_performance.png")
	return path, renderBarChart(path, "Average Delivery Days by Carrier", "days", bars)
}

// SaveTopProductsPNG draws units sold for the best-seller ranking.
func SaveTopProductsPNG(dir string, rows []domain.TopProduct) (string, error) {
	bars := make([]bar, 0, len(rows))
	for _, r := range rows {
		bars = append(bars, bar{
			label: fmt.Sprintf("%s\n%s", r.ProductID, truncate(r.ProductName, 16)),
			value: float64(r.TotalUnitsSold),
			fill:  colorBar,
		})
	}

	path := filepath.Join(dir, "top_products.png")
	return path, renderBarChart(path, "Top Products by Units Sold (90 days)", "units", bars)
}

// SaveShortageDistributionPNG draws the count of positions per stock status.
func SaveShortageDistributionPNG(dir string, rows []domain.ShortageRow) (string, error) {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.StockStatus]++
	}

	fills := map[string]color.Color{
		domain.StockOutOfStock: colorBarAlt,
		domain.StockCritical:   colorBarWarn,
		domain.StockLow:        colorBar,
		domain.StockAdequate:   color.RGBA{15, 157, 88, 255},
	}

	bars := make([]bar, 0, 4)
	for _, status := range []string{domain.StockOutOfStock, domain.StockCritical, domain.StockLow, domain.StockAdequate} {
		bars = append(bars, bar{label: status, value: float64(counts[status]), fill: fills[status]})
	}

	path := filepath.Join(dir, "shortage_distribution.png")
	return path, renderBarChart(path, "Stock Positions by Status", "positions", bars)
}

func renderBarChart(path, title, unit string, bars []bar) error {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetColor(colorBackground)
	dc.Clear()

	dc.SetColor(colorAxis)
	dc.DrawStringAnchored(title, chartWidth/2, marginTop/2, 0.5, 0.5)

	plotW := chartWidth - marginLeft - marginRight
	plotH := chartHeight - marginTop - marginBottom

	// Axes
	dc.SetLineWidth(1.5)
	dc.DrawLine(marginLeft, marginTop, marginLeft, marginTop+plotH)
	dc.DrawLine(marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH)
	dc.Stroke()

	if len(bars) == 0 {
		dc.DrawStringAnchored("no data", chartWidth/2, chartHeight/2, 0.5, 0.5)
		return dc.SavePNG(path)
	}

	maxVal := 0.0
	for _, b := range bars {
		if b.value > maxVal {
			maxVal = b.value
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Horizontal gridlines with value labels at quarters.
	for i := 0; i <= 4; i++ {
		frac := float64(i) / 4
		y := marginTop + plotH*(1-frac)
		dc.SetColor(color.RGBA{220, 220, 220, 255})
		dc.SetLineWidth(0.5)
		dc.DrawLine(marginLeft, y, marginLeft+plotW, y)
		dc.Stroke()

		dc.SetColor(colorAxis)
		dc.DrawStringAnchored(fmt.Sprintf("%.0f", maxVal*frac), marginLeft-8, y, 1, 0.5)
	}
	dc.DrawStringAnchored(unit, marginLeft-8, marginTop-16, 1, 0.5)

	slot := plotW / float64(len(bars))
	barW := slot * 0.6

	for i, b := range bars {
		x := marginLeft + slot*float64(i) + (slot-barW)/2
		h := plotH * (b.value / maxVal)
		y := marginTop + plotH - h

		dc.SetColor(b.fill)
		dc.DrawRectangle(x, y, barW, h)
		dc.Fill()

		dc.SetColor(colorAxis)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f", b.value), x+barW/2, y-10, 0.5, 0.5)
		drawMultiline(dc, b.label, x+barW/2, marginTop+plotH+16)
	}

	return dc.SavePNG(path)
}

func drawMultiline(dc *gg.Context, text string, x, y float64) {
	lines := splitLines(text)
	for i, line := range lines {
		dc.DrawStringAnchored(line, x, y+float64(i)*14, 0.5, 0.5)
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
