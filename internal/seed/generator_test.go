package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/restockd/internal/domain"
)

var anchor = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func TestGenerate_Volumes(t *testing.T) {
	ds := Generate(42, anchor)

	assert.Len(t, ds.Customers, NumCustomers)
	assert.Len(t, ds.Products, NumProducts)
	assert.Len(t, ds.Warehouses, NumWarehouses)
	assert.Len(t, ds.Carriers, 9)
	assert.Len(t, ds.Orders, NumOrders)
	assert.Len(t, ds.Inventory, NumProducts*NumWarehouses)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(7, anchor)
	b := Generate(7, anchor)

	assert.Equal(t, a.Orders, b.Orders)
	assert.Equal(t, a.Inventory, b.Inventory)
	assert.Equal(t, a.Shipments, b.Shipments)
}

func TestGenerate_ShipmentsMatchFulfilledOrders(t *testing.T) {
	ds := Generate(1, anchor)

	fulfilled := make(map[string]string)
	for _, o := range ds.Orders {
		if o.OrderStatus == domain.OrderShipped || o.OrderStatus == domain.OrderDelivered {
			fulfilled[o.OrderID] = o.OrderStatus
		}
	}
	require.Len(t, ds.Shipments, len(fulfilled))

	seen := make(map[string]bool)
	for _, s := range ds.Shipments {
		status, ok := fulfilled[s.OrderID]
		require.True(t, ok, "shipment %s references unfulfilled order %s", s.ShipmentID, s.OrderID)
		assert.False(t, seen[s.OrderID], "order %s shipped twice", s.OrderID)
		seen[s.OrderID] = true

		if status == domain.OrderDelivered {
			require.NotNil(t, s.ActualDelivery, "delivered order %s has no delivery date", s.OrderID)
			assert.True(t, s.ActualDelivery.After(s.ShipDate),
				"shipment %s delivered on or before ship date", s.ShipmentID)
			assert.Equal(t, domain.ShipmentDelivered, s.ShipmentStatus)
		} else {
			assert.Nil(t, s.ActualDelivery)
		}

		assert.NotEmpty(t, s.TrackingNumber)
		assert.False(t, s.ShipDate.Before(orderDate(t, ds.Orders, s.OrderID)))
	}
}

func TestGenerate_CarriersCoverAllServiceLevels(t *testing.T) {
	ds := Generate(3, anchor)

	levels := make(map[string]int)
	for _, c := range ds.Carriers {
		levels[c.ServiceLevel]++
		assert.Greater(t, c.AvgDeliveryTime, 0)
	}
	assert.Equal(t, 3, levels[domain.ServiceStandard])
	assert.Equal(t, 3, levels[domain.ServiceExpress])
	assert.Equal(t, 3, levels[domain.ServiceOvernight])
}

func TestGenerate_UniqueTrackingNumbers(t *testing.T) {
	ds := Generate(99, anchor)

	seen := make(map[string]bool)
	for _, s := range ds.Shipments {
		assert.False(t, seen[s.TrackingNumber], "duplicate tracking number %s", s.TrackingNumber)
		seen[s.TrackingNumber] = true
	}
}

func orderDate(t *testing.T, orders []domain.Order, orderID string) time.Time {
	t.Helper()
	for _, o := range orders {
		if o.OrderID == orderID {
			return o.OrderDate
		}
	}
	t.Fatalf("order %s not found", orderID)
	return time.Time{}
}
