package cache

import (
	"context"
	"time"
)

// Cache is the JSON front cache over persisted match results.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	DelPattern(ctx context.Context, pattern string) (int64, error)
}

// MatchesPattern covers every match key.
const MatchesPattern = "match:*"
