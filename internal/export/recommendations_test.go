package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/restockd/internal/domain"
)

func sampleRecommendations() []domain.Recommendation {
	return []domain.Recommendation{
		{
			ProductID: "P001", WarehouseID: "W01",
			SalesVelocity: 10, AvgShipmentTime: 5,
			AvailableStock: 40, SafetyStock: 140, ReorderPoint: 120, TargetStock: 440,
			RecommendedQuantity: 400, UrgencyScore: 66.66666666666667, UrgencyBucket: "High",
		},
		{
			ProductID: "P002", WarehouseID: "W03",
			SalesVelocity: 0.5, AvgShipmentTime: 3.25,
			AvailableStock: 0, SafetyStock: 7, ReorderPoint: 5.125, TargetStock: 22,
			RecommendedQuantity: 22, UrgencyScore: 100, UrgencyBucket: "Critical",
		},
	}
}

func TestCSVRoundTrip(t *testing.T) {
	recs := sampleRecommendations()

	var buf bytes.Buffer
	require.NoError(t, WriteRecommendationsCSV(&buf, recs))

	parsed, err := ReadRecommendationsCSV(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, len(recs))

	for i, got := range parsed {
		want := recs[i]
		assert.Equal(t, want.ProductID, got.ProductID)
		assert.Equal(t, want.WarehouseID, got.WarehouseID)
		assert.Equal(t, want.SalesVelocity, got.SalesVelocity)
		assert.Equal(t, want.AvgShipmentTime, got.AvgShipmentTime)
		assert.Equal(t, want.RecommendedQuantity, got.RecommendedQuantity)
		assert.Equal(t, want.UrgencyScore, got.UrgencyScore)
	}
}

func TestWriteRecommendationsCSV_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecommendationsCSV(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t,
		"product_id,warehouse_id,sales_velocity,avg_shipment_time,recommended_quantity,urgency_score",
		lines[0])
}

func TestReadRecommendationsCSV_RejectsWrongHeader(t *testing.T) {
	in := "product_id,warehouse_id,velocity\nP001,W01,10\n"
	_, err := ReadRecommendationsCSV(strings.NewReader(in))
	assert.Error(t, err)
}

func TestReadRecommendationsCSV_RejectsMalformedNumbers(t *testing.T) {
	in := strings.Join(RecommendationHeader, ",") + "\nP001,W01,fast,5,400,66.7\n"
	_, err := ReadRecommendationsCSV(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sales_velocity")
}

func TestWriteRecommendationsJSON_NumericFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecommendationsJSON(&buf, sampleRecommendations()))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	first := decoded[0]
	assert.IsType(t, float64(0), first["sales_velocity"])
	assert.IsType(t, float64(0), first["recommended_quantity"])
	assert.IsType(t, "", first["urgency_bucket"])
	assert.Equal(t, float64(400), first["recommended_quantity"])
}

func TestWriteRecommendationsJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecommendationsJSON(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}
