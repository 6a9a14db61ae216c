package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for memoizing comparison results.
// The pipeline is pure, so caching by input is always safe; the extension
// re-triggers on every DOM mutation and most triggers repeat identical text.
type CacheRepository interface {
	Get(ctx context.Context, key string) (*ComparisonResult, error)
	Set(ctx context.Context, key string, value *ComparisonResult, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
