package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/models"
	"github.com/go-redis/redis/v8"
)

const productCacheTTL = 30 * time.Minute

// ProductCache is a read-through cache for single-product lookups. It
// is an optional collaborator: the in-memory catalog stays the system
// of record and the API works identically with a nil cache.
type ProductCache struct {
	client *redis.Client
}

func NewProductCache(cfg *config.RedisConfig) *ProductCache {
	return &ProductCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		}),
	}
}

func (c *ProductCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *ProductCache) Close() error {
	return c.client.Close()
}

func productKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

// Get returns the cached product, or false on a miss or any transport
// error. Errors are deliberately swallowed; the caller falls back to
// the catalog.
func (c *ProductCache) Get(ctx context.Context, id string) (models.Product, bool) {
	data, err := c.client.Get(ctx, productKey(id)).Result()
	if err != nil {
		return models.Product{}, false
	}
	var p models.Product
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return models.Product{}, false
	}
	return p, true
}

// Set caches the product for productCacheTTL.
func (c *ProductCache) Set(ctx context.Context, p models.Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productKey(p.ID), data, productCacheTTL).Err()
}

// Invalidate drops cached entries after a product update or delete.
func (c *ProductCache) Invalidate(ctx context.Context, ids ...string) error {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = productKey(id)
	}
	return c.client.Del(ctx, keys...).Err()
}
