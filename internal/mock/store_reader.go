package mock

import (
	"context"

	"github.com/drussmiller/sparta-media-go/internal/port"
)

// StoreReader implements port.StoreReader for tests. Every ReadFile call is
// recorded in Probed so resolution order can be asserted.
type StoreReader struct {
	Files map[string][]byte
	// Err, when set, is returned for every call regardless of key.
	Err error

	Probed []string
}

var _ port.StoreReader = (*StoreReader)(nil)

func (m *StoreReader) ReadFile(ctx context.Context, fileKey string) ([]byte, error) {
	m.Probed = append(m.Probed, fileKey)
	if m.Err != nil {
		return nil, m.Err
	}
	data, ok := m.Files[fileKey]
	if !ok {
		return nil, port.ErrObjectNotFound
	}
	return data, nil
}

func (m *StoreReader) FileExists(ctx context.Context, fileKey string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, ok := m.Files[fileKey]
	return ok, nil
}
