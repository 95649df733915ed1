package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/andresuchdata/restockd/internal/domain"
)

var velocityNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func salesRec(product, warehouse string, daysAgo, qty int) domain.SalesRecord {
	return domain.SalesRecord{
		ProductID:   product,
		WarehouseID: warehouse,
		OrderDate:   velocityNow.AddDate(0, 0, -daysAgo),
		Quantity:    qty,
	}
}

func TestVelocityByPair_SumsWithinWindow(t *testing.T) {
	sales := []domain.SalesRecord{
		salesRec("P001", "W01", 1, 10),
		salesRec("P001", "W01", 15, 20),
		salesRec("P001", "W02", 5, 6),
	}

	velocity := VelocityByPair(sales, velocityNow, 30)

	assert.InDelta(t, 1.0, velocity[PairKey{"P001", "W01"}], 1e-9)
	assert.InDelta(t, 0.2, velocity[PairKey{"P001", "W02"}], 1e-9)
}

func TestVelocityByPair_ExcludesRecordsOutsideWindow(t *testing.T) {
	sales := []domain.SalesRecord{
		salesRec("P001", "W01", 31, 300),
		salesRec("P002", "W01", 10, 30),
		// An order dated after "now" must not count either.
		salesRec("P003", "W01", -1, 99),
	}

	velocity := VelocityByPair(sales, velocityNow, 30)

	assert.NotContains(t, velocity, PairKey{"P001", "W01"})
	assert.NotContains(t, velocity, PairKey{"P003", "W01"})
	assert.InDelta(t, 1.0, velocity[PairKey{"P002", "W01"}], 1e-9)
}

func TestVelocityByPair_EmptyInput(t *testing.T) {
	velocity := VelocityByPair(nil, velocityNow, 30)
	assert.Empty(t, velocity)
}

func TestVelocityByPair_WindowLengthChangesRate(t *testing.T) {
	sales := []domain.SalesRecord{salesRec("P001", "W01", 2, 60)}

	assert.InDelta(t, 2.0, VelocityByPair(sales, velocityNow, 30)[PairKey{"P001", "W01"}], 1e-9)
	assert.InDelta(t, 6.0, VelocityByPair(sales, velocityNow, 10)[PairKey{"P001", "W01"}], 1e-9)
}
