package redis

import (
	"context"
	"errors"
	"time"

	cachePort "yatube/internal/ports/cache"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const keyPrefix = "cache:"

// ListingCacheRedis implements cache.ListingCache with plain Redis strings.
type ListingCacheRedis struct {
	Client *redis.Client
	Logger *zap.Logger
}

func NewListingCacheRedis(client *redis.Client, logger *zap.Logger) *ListingCacheRedis {
	return &ListingCacheRedis{
		Client: client,
		Logger: logger,
	}
}

func (r *ListingCacheRedis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.Client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cachePort.ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (r *ListingCacheRedis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.Client.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		return err
	}
	r.Logger.Debug("Cached listing", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

// Clear drops every entry under the cache prefix.
func (r *ListingCacheRedis) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := r.Client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.Client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	r.Logger.Info("🧹 Listing cache cleared")
	return nil
}
