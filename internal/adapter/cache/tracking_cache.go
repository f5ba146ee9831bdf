// Package cache caches tracking code resolution in front of the
// application store. Redirects are the hot path; offers and applications
// change rarely.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
)

const keyPrefix = "tracking:link:"

// kv is the subset of redis.Cmdable the cache needs.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedApplications decorates an ApplicationRepository. Cache failures are
// logged and fall through to the wrapped repository.
type CachedApplications struct {
	next   port.ApplicationRepository
	client kv
	ttl    time.Duration
	logger *slog.Logger
}

var _ port.ApplicationRepository = (*CachedApplications)(nil)

// NewCachedApplications wraps next with a read-through cache of tracking
// code lookups kept for ttl.
func NewCachedApplications(next port.ApplicationRepository, client kv, ttl time.Duration, logger *slog.Logger) *CachedApplications {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedApplications{next: next, client: client, ttl: ttl, logger: logger}
}

// Connect opens a client and pings it.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

func (c *CachedApplications) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	return c.next.GetApplication(ctx, id)
}

func (c *CachedApplications) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	return c.next.GetOffer(ctx, id)
}

func (c *CachedApplications) ResolveTrackingCode(ctx context.Context, code string) (*domain.TrackingLink, error) {
	key := keyPrefix + code

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var link domain.TrackingLink
		if err := json.Unmarshal(raw, &link); err == nil {
			return &link, nil
		}
		c.logger.Warn("corrupt tracking cache entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("tracking cache get", slog.String("key", key), slog.Any("error", err))
	}

	link, err := c.next.ResolveTrackingCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(link); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("tracking cache set", slog.String("key", key), slog.Any("error", err))
		}
	}
	return link, nil
}
