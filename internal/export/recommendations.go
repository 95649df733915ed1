// Package export renders engine and analytics output to CSV and JSON files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andresuchdata/restockd/internal/domain"
)

// RecommendationHeader is the stable column order of the recommendations CSV.
var RecommendationHeader = []string{
	"product_id",
	"warehouse_id",
	"sales_velocity",
	"avg_shipment_time",
	"recommended_quantity",
	"urgency_score",
}

// WriteRecommendationsCSV writes the ranked recommendations to w. Floats use
// the shortest representation that survives a parse back.
func WriteRecommendationsCSV(w io.Writer, recs []domain.Recommendation) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(RecommendationHeader); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}

	for _, r := range recs {
		row := []string{
			r.ProductID,
			r.WarehouseID,
			formatFloat(r.SalesVelocity),
			formatFloat(r.AvgShipmentTime),
			strconv.Itoa(r.RecommendedQuantity),
			formatFloat(r.UrgencyScore),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("error writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadRecommendationsCSV parses a file previously produced by
// WriteRecommendationsCSV. Only the exported columns come back, derived
// fields like safety stock are not part of the wire format.
func ReadRecommendationsCSV(r io.Reader) ([]domain.Recommendation, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading csv header: %w", err)
	}
	if len(header) != len(RecommendationHeader) {
		return nil, fmt.Errorf("unexpected csv header: %v", header)
	}
	for i, col := range RecommendationHeader {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected csv column %d: got %q, want %q", i, header[i], col)
		}
	}

	var recs []domain.Recommendation
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv row: %w", err)
		}

		velocity, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid sales_velocity %q: %w", line, row[2], err)
		}
		shipTime, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid avg_shipment_time %q: %w", line, row[3], err)
		}
		qty, err := strconv.Atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid recommended_quantity %q: %w", line, row[4], err)
		}
		score, err := strconv.ParseFloat(row[5], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid urgency_score %q: %w", line, row[5], err)
		}

		recs = append(recs, domain.Recommendation{
			ProductID:           row[0],
			WarehouseID:         row[1],
			SalesVelocity:       velocity,
			AvgShipmentTime:     shipTime,
			RecommendedQuantity: qty,
			UrgencyScore:        score,
		})
	}

	return recs, nil
}

// WriteRecommendationsJSON writes the full recommendation objects as a JSON
// array. Numeric fields stay numeric.
func WriteRecommendationsJSON(w io.Writer, recs []domain.Recommendation) error {
	if recs == nil {
		recs = []domain.Recommendation{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("error encoding recommendations json: %w", err)
	}
	return nil
}

// SaveRecommendations writes both the CSV and JSON artifacts into dir and
// returns the paths written.
func SaveRecommendations(dir string, recs []domain.Recommendation) (csvPath, jsonPath string, err error) {
	csvPath = dir + "/restock_recommendations.csv"
	jsonPath = dir + "/restock_recommendations.json"

	if err = writeFile(csvPath, func(w io.Writer) error {
		return WriteRecommendationsCSV(w, recs)
	}); err != nil {
		return "", "", err
	}

	if err = writeFile(jsonPath, func(w io.Writer) error {
		return WriteRecommendationsJSON(w, recs)
	}); err != nil {
		return "", "", err
	}

	return csvPath, jsonPath, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
