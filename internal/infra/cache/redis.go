package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"ecotrack/internal/pkg/config"
	"ecotrack/internal/usecase/queries"
)

// RedisCache is a JSON view cache with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}
}

func (c *RedisCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, err
	}

	return true, nil
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// DisabledCache reports misses and swallows writes; used when no redis
// address is configured.
type DisabledCache struct{}

func NewDisabledCache() *DisabledCache {
	return &DisabledCache{}
}

func (DisabledCache) GetJSON(context.Context, string, any) (bool, error) {
	return false, nil
}

func (DisabledCache) SetJSON(context.Context, string, any) error {
	return nil
}

var (
	_ queries.ViewCache = (*RedisCache)(nil)
	_ queries.ViewCache = DisabledCache{}
)
