package port

import (
	"context"
	"time"
)

// Cache remembers which physical key a logical file reference last resolved
// to, so the serving path can skip the probe sequence on repeat reads.
type Cache interface {
	GetResolvedKey(ctx context.Context, ref string) (string, error)
	SetResolvedKey(ctx context.Context, ref, fileKey string, ttl time.Duration)
	DeleteResolvedKey(ctx context.Context, ref string) error
}
