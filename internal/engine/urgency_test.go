package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andresuchdata/restockd/internal/domain"
)

func TestUrgencyScore(t *testing.T) {
	tests := []struct {
		name         string
		reorderPoint float64
		available    int
		want         float64
	}{
		{"half depleted", 120, 60, 50},
		{"fully out of stock", 120, 0, 100},
		{"exactly at reorder point", 120, 120, 0},
		{"no demand and out of stock", 0, 0, 100},
		{"no demand with stock on hand", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, UrgencyScore(tt.reorderPoint, tt.available), 1e-9)
		})
	}
}

func TestUrgencyBucket_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, BucketCritical},
		{99.999, BucketVeryHigh},
		{75, BucketVeryHigh},
		{74.999, BucketHigh},
		{50, BucketHigh},
		{49.999, BucketMedium},
		{25, BucketMedium},
		{24.999, BucketLow},
		{0, BucketLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UrgencyBucket(tt.score), "score %v", tt.score)
	}
}

func TestSortByUrgency_DeterministicTieBreak(t *testing.T) {
	recs := []domain.Recommendation{
		{ProductID: "P002", WarehouseID: "W01", UrgencyScore: 80},
		{ProductID: "P001", WarehouseID: "W02", UrgencyScore: 80},
		{ProductID: "P001", WarehouseID: "W01", UrgencyScore: 80},
		{ProductID: "P003", WarehouseID: "W01", UrgencyScore: 95},
		{ProductID: "P004", WarehouseID: "W01", UrgencyScore: 10},
	}

	SortByUrgency(recs)

	got := make([][2]string, 0, len(recs))
	for _, r := range recs {
		got = append(got, [2]string{r.ProductID, r.WarehouseID})
	}

	assert.Equal(t, [][2]string{
		{"P003", "W01"},
		{"P001", "W01"},
		{"P001", "W02"},
		{"P002", "W01"},
		{"P004", "W01"},
	}, got)
}
