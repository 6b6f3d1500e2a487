package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key holds no live entry.
var ErrMiss = errors.New("cache miss")

// ListingCache keeps rendered listings for a short time.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Clear(ctx context.Context) error
}
