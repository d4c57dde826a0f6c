package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/travelgo/travel-api/internal/core/domain"
)

const (
	catalogKey = "catalog:destinations"
	catalogTTL = 5 * time.Minute
)

// CatalogCache is a read-through cache for the public destination listing.
// A cold key, a decode failure, or an unreachable backend all behave as a
// miss; the catalog never depends on Redis being up.
type CatalogCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client, log zerolog.Logger) *CatalogCache {
	return &CatalogCache{client: client, log: log}
}

func (c *CatalogCache) Get(ctx context.Context) ([]domain.Destination, bool) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("catalog cache read failed")
		}
		return nil, false
	}

	var destinations []domain.Destination
	if err := json.Unmarshal(data, &destinations); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache entry corrupt, discarding")
		_ = c.client.Del(ctx, catalogKey).Err()
		return nil, false
	}
	return destinations, true
}

func (c *CatalogCache) Set(ctx context.Context, destinations []domain.Destination) {
	data, err := json.Marshal(destinations)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, catalogKey, data, catalogTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache write failed")
	}
}

// Invalidate drops the cached listing. Called after every catalog mutation.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
