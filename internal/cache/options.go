// Package cache holds the redis-backed cache for grid filter options. The
// distinct-value queries behind the grid filter dropdowns scan whole columns,
// so their results are kept warm for a short TTL.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Loader fetches the distinct values for one grid column from the database.
type Loader func(ctx context.Context) ([]string, error)

// OptionsCache caches filter-option lists per (entity, column). A nil
// *OptionsCache is valid and always calls the loader directly, so callers
// never branch on whether caching is configured.
type OptionsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) *OptionsCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &OptionsCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached option list for (entity, column), falling back to
// the loader on a miss or any redis error. Cache failures are logged and
// never surfaced: the database remains the source of truth.
func (c *OptionsCache) Get(ctx context.Context, entity, column string, load Loader) ([]string, error) {
	if c == nil || c.client == nil {
		return load(ctx)
	}

	key := cacheKey(entity, column)

	raw, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var options []string
		if err := json.Unmarshal([]byte(raw), &options); err == nil {
			return options, nil
		}
		c.logger.WarnContext(ctx, "discarding malformed cache entry", "key", key)
	} else if err != redis.Nil {
		c.logger.WarnContext(ctx, "cache read failed, falling back to database",
			"key", key,
			"error", err,
		)
	}

	options, err := load(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(options)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to encode cache entry", "key", key, "error", err)
		return options, nil
	}
	if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}

	return options, nil
}

// Invalidate drops the cached options for one (entity, column) pair.
func (c *OptionsCache) Invalidate(ctx context.Context, entity, column string) {
	if c == nil || c.client == nil {
		return
	}
	key := cacheKey(entity, column)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache invalidation failed", "key", key, "error", err)
	}
}

func cacheKey(entity, column string) string {
	return fmt.Sprintf("grid:options:%s:%s", entity, column)
}
