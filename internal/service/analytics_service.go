package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/andresuchdata/restockd/internal/domain"
	"github.com/andresuchdata/restockd/internal/repository"
)

const defaultTopProductLimit = 5

// AnalyticsService exposes the descriptive reporting views and derives the
// executive insights summary from them.
type AnalyticsService struct {
	repo repository.AnalyticsRepository
}

func NewAnalyticsService(repo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

func (s *AnalyticsService) CarrierPerformance(ctx context.Context) ([]domain.CarrierPerformance, error) {
	return s.repo.CarrierPerformance(ctx)
}

func (s *AnalyticsService) TopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	if limit <= 0 {
		limit = defaultTopProductLimit
	}
	return s.repo.TopProducts(ctx, limit)
}

func (s *AnalyticsService) Shortages(ctx context.Context) ([]domain.ShortageRow, error) {
	return s.repo.Shortages(ctx)
}

// Insights runs all three views and condenses them into one summary.
func (s *AnalyticsService) Insights(ctx context.Context) (*domain.SupplyChainInsights, error) {
	carriers, err := s.repo.CarrierPerformance(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.TopProducts(ctx, defaultTopProductLimit)
	if err != nil {
		return nil, err
	}
	shortages, err := s.repo.Shortages(ctx)
	if err != nil {
		return nil, err
	}

	return deriveInsights(carriers, products, shortages), nil
}

func deriveInsights(carriers []domain.CarrierPerformance, products []domain.TopProduct, shortages []domain.ShortageRow) *domain.SupplyChainInsights {
	insights := &domain.SupplyChainInsights{
		TopProductRevenue:    decimal.Zero,
		OutOfStockWarehouses: []string{},
	}

	if len(products) > 0 {
		insights.TopProductRevenue = products[0].TotalRevenue
		insights.DominantCategory = dominantCategory(products)
	}

	if len(carriers) > 0 {
		totalShipments := 0
		weighted := 0.0
		best, worst := carriers[0], carriers[0]
		for _, c := range carriers {
			totalShipments += c.TotalShipments
			weighted += c.AvgDeliveryDays * float64(c.TotalShipments)
			if c.OnTimePercentage > best.OnTimePercentage {
				best = c
			}
			if c.OnTimePercentage < worst.OnTimePercentage {
				worst = c
			}
		}
		if totalShipments > 0 {
			insights.AvgDeliveryDays = weighted / float64(totalShipments)
		}
		insights.BestCarrier = fmt.Sprintf("%s (%s)", best.CarrierID, best.ServiceLevel)
		insights.WorstCarrier = fmt.Sprintf("%s (%s)", worst.CarrierID, worst.ServiceLevel)
	}

	outOfStock := make(map[string]bool)
	for _, row := range shortages {
		switch row.StockStatus {
		case domain.StockOutOfStock:
			insights.CriticalShortages++
			outOfStock[row.WarehouseID] = true
		case domain.StockCritical:
			insights.CriticalShortages++
		}
	}
	for id := range outOfStock {
		insights.OutOfStockWarehouses = append(insights.OutOfStockWarehouses, id)
	}
	sort.Strings(insights.OutOfStockWarehouses)

	return insights
}

// dominantCategory is the category with the most units sold across the
// top-product ranking. Ties break alphabetically.
func dominantCategory(products []domain.TopProduct) string {
	units := make(map[string]int)
	for _, p := range products {
		units[p.ProductCategory] += p.TotalUnitsSold
	}

	best := ""
	bestUnits := -1
	for category, n := range units {
		if n > bestUnits || (n == bestUnits && category < best) {
			best = category
			bestUnits = n
		}
	}
	return best
}
