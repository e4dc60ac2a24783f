package repo

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/greenharvest/storefront-catalog/internal/app/catalog/contracts"
)

const quantityKeyPrefix = "sales:qty:"

// CachedSalesLedger decorates a SalesLedger with a Redis read-through
// cache. Sales aggregates are ephemeral by design; the TTL is the only
// invalidation. Redis being down never fails a query: the decorator falls
// back to the underlying ledger.
type CachedSalesLedger struct {
	inner contracts.SalesLedger
	rdb   *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

// NewCachedSalesLedger wraps the given ledger with a TTL cache.
func NewCachedSalesLedger(inner contracts.SalesLedger, rdb *redis.Client, ttl time.Duration, log *zap.Logger) contracts.SalesLedger {
	return &CachedSalesLedger{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		log:   log,
	}
}

// FetchOrderQuantities serves cached per-product totals and reads the
// misses through the underlying ledger.
func (c *CachedSalesLedger) FetchOrderQuantities(ctx context.Context, productIDs []string) (map[string]int64, error) {
	if len(productIDs) == 0 {
		return map[string]int64{}, nil
	}

	keys := make([]string, len(productIDs))
	for i, id := range productIDs {
		keys[i] = quantityKeyPrefix + id
	}

	cached, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		if c.log != nil {
			c.log.Warn("sales cache unavailable, reading ledger directly", zap.Error(err))
		}
		return c.inner.FetchOrderQuantities(ctx, productIDs)
	}

	quantities := make(map[string]int64, len(productIDs))
	var misses []string
	for i, raw := range cached {
		s, ok := raw.(string)
		if !ok {
			misses = append(misses, productIDs[i])
			continue
		}
		qty, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			misses = append(misses, productIDs[i])
			continue
		}
		quantities[productIDs[i]] = qty
	}

	if len(misses) == 0 {
		return quantities, nil
	}

	fresh, err := c.inner.FetchOrderQuantities(ctx, misses)
	if err != nil {
		return nil, err
	}

	pipe := c.rdb.Pipeline()
	for _, id := range misses {
		qty := fresh[id]
		quantities[id] = qty
		pipe.Set(ctx, quantityKeyPrefix+id, strconv.FormatInt(qty, 10), c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil && c.log != nil {
		// Best effort; the result is already assembled.
		c.log.Warn("failed to populate sales cache", zap.Error(err))
	}

	return quantities, nil
}
