package ports

import (
	"context"
	"time"
)

// Cache for encoded summary reports keyed by result id.
type SummaryCache interface {
	// Return the cached value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
