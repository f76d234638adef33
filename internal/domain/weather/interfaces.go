package weather

import (
	"context"
	"time"
)

// Provider fetches the current reading from an upstream weather API.
type Provider interface {
	Current(ctx context.Context) (Reading, error)
}

// Cache keeps recent readings so every suggestion does not hit the upstream API.
type Cache interface {
	Get(ctx context.Context, key string) (Reading, bool, error)
	Set(ctx context.Context, key string, reading Reading, ttl time.Duration) error
}
