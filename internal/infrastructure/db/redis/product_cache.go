package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mercadito/ecommerce-api/internal/api/metrics"
	"github.com/mercadito/ecommerce-api/internal/core/domain"
	"github.com/mercadito/ecommerce-api/internal/core/ports"
)

const productCacheTTL = 30 * time.Second

// ProductCache decorates a ProductRepository with a short-lived read-through
// snapshot cache for the FindByIDs path, the one feeding the denormalized
// cart view. Key format: product:<id>. Catalog writes pass through and
// invalidate the key so the staleness window never exceeds the TTL.
//
// Mutation-deciding reads (FindActiveByID) are deliberately not cached.
type ProductCache struct {
	client *redis.Client
	repo   ports.ProductRepository
}

func NewProductCache(client *redis.Client, repo ports.ProductRepository) *ProductCache {
	return &ProductCache{client: client, repo: repo}
}

func (c *ProductCache) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Product, error) {
	result := make(map[string]*domain.Product, len(ids))
	missing := make([]string, 0, len(ids))

	for _, id := range ids {
		raw, err := c.client.Get(ctx, c.key(id)).Bytes()
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				return nil, fmt.Errorf("product cache get: %w", err)
			}
			metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
			missing = append(missing, id)
			continue
		}

		var p domain.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			// Treat a corrupt entry as a miss; it gets overwritten below.
			metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
			missing = append(missing, id)
			continue
		}
		metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
		result[p.ID] = &p
	}

	if len(missing) == 0 {
		return result, nil
	}

	fetched, err := c.repo.FindByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, p := range fetched {
		result[id] = p
		if raw, err := json.Marshal(p); err == nil {
			// Best effort: a failed cache fill only costs the next read a trip
			// to the store.
			_ = c.client.Set(ctx, c.key(id), raw, productCacheTTL).Err()
		}
	}
	return result, nil
}

// The remaining ProductRepository methods delegate straight through, with
// writes invalidating the snapshot.

func (c *ProductCache) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	return c.repo.Create(ctx, p)
}

func (c *ProductCache) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return c.repo.FindByID(ctx, id)
}

func (c *ProductCache) FindActiveByID(ctx context.Context, id string) (*domain.Product, error) {
	return c.repo.FindActiveByID(ctx, id)
}

func (c *ProductCache) Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error) {
	updated, err := c.repo.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, id)
	return updated, nil
}

func (c *ProductCache) Deactivate(ctx context.Context, id string) (*domain.Product, error) {
	deactivated, err := c.repo.Deactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, id)
	return deactivated, nil
}

func (c *ProductCache) List(ctx context.Context, filter ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	return c.repo.List(ctx, filter)
}

func (c *ProductCache) invalidate(ctx context.Context, id string) {
	_ = c.client.Del(ctx, c.key(id)).Err()
}

func (c *ProductCache) key(id string) string {
	return "product:" + id
}
