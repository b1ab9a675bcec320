package cache

import (
	"context"
	"time"

	"github.com/drussmiller/sparta-media-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetResolvedKey(ctx context.Context, ref string) (string, error) {
	return "", nil // always cache miss
}

func (n *NoopCache) SetResolvedKey(ctx context.Context, ref, fileKey string, ttl time.Duration) {}

func (n *NoopCache) DeleteResolvedKey(ctx context.Context, ref string) error { return nil }
