// Package cache holds the optional Redis layer in front of the engine. A
// disabled or unreachable cache degrades to a noop so batch runs never
// depend on Redis being up.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andresuchdata/restockd/internal/config"
	"github.com/andresuchdata/restockd/internal/domain"
	"github.com/andresuchdata/restockd/internal/engine"
)

const (
	recommendationKeyPrefix   = "restock:recommendations"
	recommendationScanBatches = 100
)

type RecommendationCache interface {
	Get(ctx context.Context, params engine.Params) ([]domain.Recommendation, bool, error)
	Set(ctx context.Context, params engine.Params, recs []domain.Recommendation) error
	InvalidateAll(ctx context.Context) error
}

type redisRecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopRecommendationCache struct{}

func NewRecommendationCache(cfg config.CacheConfig) (RecommendationCache, error) {
	if !cfg.Enabled {
		return &noopRecommendationCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisRecommendationCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopRecommendationCache() RecommendationCache {
	return &noopRecommendationCache{}
}

func (c *redisRecommendationCache) Get(ctx context.Context, params engine.Params) ([]domain.Recommendation, bool, error) {
	key := buildRecommendationKey(params)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var recs []domain.Recommendation
	if err := json.Unmarshal(payload, &recs); err != nil {
		return nil, false, fmt.Errorf("decode recommendation cache: %w", err)
	}

	return recs, true, nil
}

func (c *redisRecommendationCache) Set(ctx context.Context, params engine.Params, recs []domain.Recommendation) error {
	key := buildRecommendationKey(params)
	payload, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode recommendation cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisRecommendationCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, recommendationKeyPrefix, recommendationScanBatches)
}

func (n *noopRecommendationCache) Get(ctx context.Context, params engine.Params) ([]domain.Recommendation, bool, error) {
	return nil, false, nil
}

func (n *noopRecommendationCache) Set(ctx context.Context, params engine.Params, recs []domain.Recommendation) error {
	return nil
}

func (n *noopRecommendationCache) InvalidateAll(ctx context.Context) error {
	return nil
}

// buildRecommendationKey hashes the normalized parameter set so runs with
// different knobs never share an entry.
func buildRecommendationKey(params engine.Params) string {
	p := params.Normalize()
	raw := fmt.Sprintf("window=%d|safety=%d|buffer=%d|replenish=%d|ship=%.4f",
		p.WindowDays, p.SafetyStockDays, p.BufferDays, p.ReplenishDays, p.DefaultShipmentTime)
	sum := sha1.Sum([]byte(raw))
	return fmt.Sprintf("%s:%s", recommendationKeyPrefix, hex.EncodeToString(sum[:]))
}
