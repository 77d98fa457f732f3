package invoice

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/to-goingon/notion-invoice-web/internal/logger"
)

const (
	cacheKeyList   = "invoices:list"
	cacheKeyPrefix = "invoices:id:"
)

// CachedRepository is a read-through cache in front of a Repository.
// Redis faults degrade to the source, never to the caller: a broken
// cache makes requests slower, not wrong.
type CachedRepository struct {
	source Repository
	client *goredis.Client
	ttl    time.Duration
}

func NewCachedRepository(source Repository, client *goredis.Client, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		source: source,
		client: client,
		ttl:    ttl,
	}
}

func (c *CachedRepository) List(ctx context.Context) ([]Invoice, error) {
	if val, err := c.client.Get(ctx, cacheKeyList).Result(); err == nil {
		var invoices []Invoice
		if err := json.Unmarshal([]byte(val), &invoices); err == nil {
			return invoices, nil
		}
		// corrupt entry; drop it and refetch
		_ = c.client.Del(ctx, cacheKeyList).Err()
	} else if err != goredis.Nil {
		logger.Warn("invoice cache read failed", map[string]any{
			"error": err.Error(),
		})
	}

	invoices, err := c.source.List(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, cacheKeyList, invoices)
	return invoices, nil
}

func (c *CachedRepository) Get(ctx context.Context, id string) (*Invoice, error) {
	key := cacheKeyPrefix + NormalizeID(id)

	if val, err := c.client.Get(ctx, key).Result(); err == nil {
		var inv Invoice
		if err := json.Unmarshal([]byte(val), &inv); err == nil {
			return &inv, nil
		}
		_ = c.client.Del(ctx, key).Err()
	} else if err != goredis.Nil {
		logger.Warn("invoice cache read failed", map[string]any{
			"error": err.Error(),
		})
	}

	inv, err := c.source.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, inv)
	return inv, nil
}

// store writes best-effort; a failed set only logs.
func (c *CachedRepository) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Warn("invoice cache write failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
	}
}
