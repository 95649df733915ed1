package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/restockd/internal/cache"
	"github.com/andresuchdata/restockd/internal/domain"
	"github.com/andresuchdata/restockd/internal/engine"
	"github.com/andresuchdata/restockd/internal/repository"
)

// RestockService runs the recommendation pipeline: load rows, aggregate,
// compute, rank. Results are cached per parameter set when a cache is
// configured.
type RestockService struct {
	repo  repository.RestockRepository
	cache cache.RecommendationCache
}

func NewRestockService(repo repository.RestockRepository, cacheImpl cache.RecommendationCache) *RestockService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopRecommendationCache()
	}
	return &RestockService{repo: repo, cache: cacheImpl}
}

// Recommendations computes the ranked restocking list as of now.
func (s *RestockService) Recommendations(ctx context.Context, params engine.Params) ([]domain.Recommendation, error) {
	params = params.Normalize()

	if recs, ok, err := s.cache.Get(ctx, params); err == nil && ok {
		return recs, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("restock: cache get failed")
	}

	recs, err := s.compute(ctx, params, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, params, recs); err != nil {
		log.Warn().Err(err).Msg("restock: cache set failed")
	}

	return recs, nil
}

func (s *RestockService) compute(ctx context.Context, params engine.Params, now time.Time) ([]domain.Recommendation, error) {
	cutoff := now.AddDate(0, 0, -params.WindowDays)

	sales, err := s.repo.SalesRecords(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	shipments, err := s.repo.ShipmentRecords(ctx)
	if err != nil {
		return nil, err
	}

	inventory, err := s.repo.InventoryRecords(ctx)
	if err != nil {
		return nil, err
	}

	velocity := engine.VelocityByPair(sales, now, params.WindowDays)
	shipTimes := engine.ShipmentTimeByWarehouse(shipments, params.DefaultShipmentTime)
	recs := engine.BuildRecommendations(inventory, velocity, shipTimes, params)

	log.Info().
		Int("sales_records", len(sales)).
		Int("shipment_records", len(shipments)).
		Int("inventory_positions", len(inventory)).
		Int("flagged_pairs", len(recs)).
		Msg("restock: recommendation run complete")

	return recs, nil
}
