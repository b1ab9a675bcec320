package mock

import (
	"context"
	"time"

	"github.com/drussmiller/sparta-media-go/internal/port"
)

// Cache implements port.Cache for tests.
type Cache struct {
	Entries map[string]string

	GetErr error
	DelErr error

	// captured inputs
	SetRef string
	SetKey string
	SetTTL time.Duration

	GetCalled bool
	SetCalled bool
	DelCalled bool
}

var _ port.Cache = (*Cache)(nil)

func (m *Cache) GetResolvedKey(ctx context.Context, ref string) (string, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return "", m.GetErr
	}
	return m.Entries[ref], nil
}

func (m *Cache) SetResolvedKey(ctx context.Context, ref, fileKey string, ttl time.Duration) {
	m.SetCalled = true
	m.SetRef = ref
	m.SetKey = fileKey
	m.SetTTL = ttl
	if m.Entries == nil {
		m.Entries = make(map[string]string)
	}
	m.Entries[ref] = fileKey
}

func (m *Cache) DeleteResolvedKey(ctx context.Context, ref string) error {
	m.DelCalled = true
	if m.DelErr != nil {
		return m.DelErr
	}
	delete(m.Entries, ref)
	return nil
}
