package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/campus-kit/triage-service/internal/domain"
)

const countsKey = "triage:counts"

// ErrMiss indicates the cache has no usable entry for the requested key.
var ErrMiss = errors.New("cache miss")

// StatsCache keeps dashboard aggregate counts in Redis so repeated
// operator refreshes avoid a full store scan. Writes invalidate the entry
// rather than update it.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewStatsCache constructs a cache over the given client.
func NewStatsCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *StatsCache {
	return &StatsCache{client: client, ttl: ttl, logger: logger}
}

// GetCounts returns cached counts or ErrMiss.
func (c *StatsCache) GetCounts(ctx context.Context) (*domain.TicketCounts, error) {
	if c == nil || c.client == nil {
		return nil, ErrMiss
	}
	raw, err := c.client.Get(ctx, countsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("counts cache read failed", zap.Error(err))
		}
		return nil, ErrMiss
	}
	var counts domain.TicketCounts
	if err := json.Unmarshal(raw, &counts); err != nil {
		return nil, ErrMiss
	}
	return &counts, nil
}

// SetCounts stores counts with the configured TTL. Failures are logged
// and swallowed; the cache is an optimization, never a dependency.
func (c *StatsCache) SetCounts(ctx context.Context, counts domain.TicketCounts) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(counts)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, countsKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("counts cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached counts after a ticket write.
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, countsKey).Err(); err != nil {
		c.logger.Warn("counts cache invalidation failed", zap.Error(err))
	}
}
