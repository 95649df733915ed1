package engine

import (
	"sort"

	"github.com/andresuchdata/restockd/internal/domain"
)

// Urgency buckets, from most to least severe.
const (
	BucketCritical = "Critical"
	BucketVeryHigh = "Very High"
	BucketHigh     = "High"
	BucketMedium   = "Medium"
	BucketLow      = "Low"
)

// UrgencyScore measures, as a percentage, how far available stock has fallen
// below the reorder point. A zero reorder point means no measured demand:
// such a pair scores 100 when fully out of stock and 0 otherwise.
func UrgencyScore(reorderPoint float64, available int) float64 {
	if reorderPoint <= 0 {
		if available == 0 {
			return 100
		}
		return 0
	}
	return (reorderPoint - float64(available)) / reorderPoint * 100
}

// UrgencyBucket classifies a score. The boundaries are part of the output
// contract: 100 is Critical (out of stock), then 25-point bands down to Low.
func UrgencyBucket(score float64) string {
	switch {
	case score >= 100:
		return BucketCritical
	case score >= 75:
		return BucketVeryHigh
	case score >= 50:
		return BucketHigh
	case score >= 25:
		return BucketMedium
	default:
		return BucketLow
	}
}

// SortByUrgency orders recommendations by descending urgency score, breaking
// ties by ascending product then warehouse so output is deterministic.
func SortByUrgency(recs []domain.Recommendation) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].UrgencyScore != recs[j].UrgencyScore {
			return recs[i].UrgencyScore > recs[j].UrgencyScore
		}
		if recs[i].ProductID != recs[j].ProductID {
			return recs[i].ProductID < recs[j].ProductID
		}
		return recs[i].WarehouseID < recs[j].WarehouseID
	})
}
