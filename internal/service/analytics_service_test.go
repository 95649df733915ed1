package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/andresuchdata/restockd/internal/domain"
)

func TestDeriveInsights_Empty(t *testing.T) {
	insights := deriveInsights(nil, nil, nil)

	assert.True(t, insights.TopProductRevenue.IsZero())
	assert.Zero(t, insights.CriticalShortages)
	assert.Empty(t, insights.BestCarrier)
	assert.Empty(t, insights.OutOfStockWarehouses)
}

func TestDeriveInsights_CarrierExtremes(t *testing.T) {
	carriers := []domain.CarrierPerformance{
		{CarrierID: "SwiftHaul", ServiceLevel: "Express", TotalShipments: 10, AvgDeliveryDays: 2, OnTimePercentage: 95},
		{CarrierID: "BlueCrate", ServiceLevel: "Standard", TotalShipments: 30, AvgDeliveryDays: 6, OnTimePercentage: 60},
	}

	insights := deriveInsights(carriers, nil, nil)

	assert.Equal(t, "SwiftHaul (Express)", insights.BestCarrier)
	assert.Equal(t, "BlueCrate (Standard)", insights.WorstCarrier)
	// Weighted by shipment counts: (2*10 + 6*30) / 40 = 5.
	assert.InDelta(t, 5.0, insights.AvgDeliveryDays, 1e-9)
}

func TestDeriveInsights_ShortageCountsAndWarehouses(t *testing.T) {
	shortages := []domain.ShortageRow{
		{WarehouseID: "W02", StockStatus: domain.StockOutOfStock},
		{WarehouseID: "W01", StockStatus: domain.StockOutOfStock},
		{WarehouseID: "W02", StockStatus: domain.StockOutOfStock},
		{WarehouseID: "W03", StockStatus: domain.StockCritical},
		{WarehouseID: "W04", StockStatus: domain.StockAdequate},
	}

	insights := deriveInsights(nil, nil, shortages)

	assert.Equal(t, 4, insights.CriticalShortages)
	assert.Equal(t, []string{"W01", "W02"}, insights.OutOfStockWarehouses)
}

func TestDeriveInsights_TopProductAndCategory(t *testing.T) {
	products := []domain.TopProduct{
		{ProductID: "P001", ProductCategory: "Toys", TotalUnitsSold: 120, TotalRevenue: decimal.NewFromInt(9000)},
		{ProductID: "P002", ProductCategory: "Electronics", TotalUnitsSold: 100, TotalRevenue: decimal.NewFromInt(20000)},
		{ProductID: "P003", ProductCategory: "Electronics", TotalUnitsSold: 90, TotalRevenue: decimal.NewFromInt(5000)},
	}

	insights := deriveInsights(nil, products, nil)

	// Revenue comes from the ranking leader, not the revenue maximum.
	assert.True(t, insights.TopProductRevenue.Equal(decimal.NewFromInt(9000)))
	assert.Equal(t, "Electronics", insights.DominantCategory)
}
