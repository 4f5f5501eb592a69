// Package storage caches resolved summoner ids in Redis.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marcin-skalski/lol-cooldowns/internal/lol"
	"github.com/marcin-skalski/lol-cooldowns/internal/match"
)

const keyPrefix = "lolcd:summoner:"

// PlayerCache implements match.IDCache. A cache without a reachable Redis is disabled
// and every call is a no-op miss.
type PlayerCache struct {
	client  redis.UniversalClient
	ttl     time.Duration
	enabled bool
	logger  *slog.Logger
}

var _ match.IDCache = (*PlayerCache)(nil)

// NewPlayerCache connects to redisURL. An empty URL, a bad URL or a failed ping yield
// a disabled cache rather than an error.
func NewPlayerCache(ctx context.Context, redisURL string, ttl time.Duration, logger *slog.Logger) *PlayerCache {
	if redisURL == "" {
		logger.Debug("redis not configured, player cache disabled")
		return &PlayerCache{logger: logger}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn("parse redis url, player cache disabled", "err", err)
		return &PlayerCache{logger: logger}
	}
	opt.PoolSize = 2
	opt.DialTimeout = 3 * time.Second
	opt.ReadTimeout = 2 * time.Second
	opt.WriteTimeout = 2 * time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping failed, player cache disabled", "addr", opt.Addr, "err", err)
		client.Close()
		return &PlayerCache{logger: logger}
	}

	logger.Info("redis player cache connected", "addr", opt.Addr, "ttl", ttl)
	return NewPlayerCacheWithClient(client, ttl, logger)
}

// NewPlayerCacheWithClient wraps an existing client.
func NewPlayerCacheWithClient(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *PlayerCache {
	return &PlayerCache{client: client, ttl: ttl, enabled: true, logger: logger}
}

func (c *PlayerCache) Enabled() bool {
	return c.enabled
}

func Key(p lol.Platform, normalizedName string) string {
	return keyPrefix + string(p) + ":" + normalizedName
}

func (c *PlayerCache) LookupPlayer(ctx context.Context, p lol.Platform, name string) (match.PlayerID, bool, error) {
	if !c.enabled {
		return 0, false, nil
	}

	val, err := c.client.Get(ctx, Key(p, name)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get: %w", err)
	}

	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse cached id %q: %w", val, err)
	}
	return match.PlayerID(id), true, nil
}

func (c *PlayerCache) StorePlayer(ctx context.Context, p lol.Platform, name string, id match.PlayerID) error {
	if !c.enabled {
		return nil
	}
	if err := c.client.Set(ctx, Key(p, name), strconv.FormatInt(int64(id), 10), c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *PlayerCache) Close() error {
	if !c.enabled {
		return nil
	}
	return c.client.Close()
}
