package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache with TTL semantics. Lookups are best-effort:
// a miss and a backend failure both report ok=false.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}
