package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
)

const activeProductsKey = "catalog:products:active"

// CatalogCache keeps the active-product listing in Redis so the storefront
// page does not hit Postgres on every load. Product writes invalidate it.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCatalogCache builds the cache around an existing client.
func NewCatalogCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl, logger: logger}
}

// GetActive returns the cached listing. A miss or a decode failure reports
// ok=false; cache trouble never fails the request.
func (c *CatalogCache) GetActive(ctx context.Context) ([]domain.Product, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, activeProductsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var products []domain.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		c.logger.Warn("catalog cache decode failed", zap.Error(err))
		return nil, false
	}
	return products, true
}

// SetActive stores the listing with the configured TTL.
func (c *CatalogCache) SetActive(ctx context.Context, products []domain.Product) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn("catalog cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, activeProductsKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", zap.Error(err))
	}
}

// Invalidate drops the listing after any product write.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, activeProductsKey).Err(); err != nil {
		c.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
