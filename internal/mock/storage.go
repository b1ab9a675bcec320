package mock

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/drussmiller/sparta-media-go/internal/port"
)

// Storage implements port.Storage for tests, backed by an in-memory key
// space so scan and rename flows can be exercised end to end.
type Storage struct {
	mu    sync.Mutex
	Files map[string][]byte

	StatInfoOut port.FileInfo

	// errors
	InitBucketErr error
	StatErr       error
	GetErr        error
	SaveErr       error
	RemoveErr     error
	CopyErr       error
	ListErr       error
	ReadErr       error
	ExistsErr     error

	// captured inputs
	SavedKeys   []string
	RemovedKeys []string
	ReadKeys    []string

	// call flags
	InitBucketCalled bool
	StatCalled       bool
	GetCalled        bool
	SaveCalled       bool
	RemoveCalled     bool
	CopyCalled       bool
	ListCalled       bool
	ReadCalled       bool
	ExistsCalled     bool
}

var _ port.Storage = (*Storage)(nil)

func (m *Storage) ensure() {
	if m.Files == nil {
		m.Files = make(map[string][]byte)
	}
}

func (m *Storage) InitBucket() error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) StatFile(ctx context.Context, fileKey string) (port.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure()
	m.StatCalled = true
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	if m.StatInfoOut != (port.FileInfo{}) {
		return m.StatInfoOut, nil
	}
	data, ok := m.Files[fileKey]
	if !ok {
		return port.FileInfo{}, port.ErrObjectNotFound
	}
	return port.FileInfo{SizeBytes: int64(len(data))}, nil
}

func (m *Storage) GetFile(ctx context.Context, fileKey string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure()
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	data, ok := m.Files[fileKey]
	if !ok {
		return nil, port.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *Storage) ReadFile(ctx context.Context, fileKey string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure()
	m.ReadCalled = true
	m.ReadKeys = append(m.ReadKeys, fileKey)
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	data, ok := m.Files[fileKey]
	if !ok {
		return nil, port.ErrObjectNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Storage) FileExists(ctx context.Context, fileKey string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure()
	m.ExistsCalled = true
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	_, ok := m.Files[fileKey]
	return ok, nil
}

func (m *Storage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure()
	m.SaveCalled = true
	m.SavedKeys = append(m.SavedKeys, fileKey)
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.Files[fileKey] = data
	return nil
}

func (m *Storage) RemoveFile(ctx context.Context, fileKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure()
	m.RemoveCalled = true
	m.RemovedKeys = append(m.RemovedKeys, fileKey)
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	delete(m.Files, fileKey)
	return nil
}

func (m *Storage) CopyFile(ctx context.Context, srcKey, destKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure()
	m.CopyCalled = true
	if m.CopyErr != nil {
		return m.CopyErr
	}
	data, ok := m.Files[srcKey]
	if !ok {
		return port.ErrObjectNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	m.Files[destKey] = out
	return nil
}

func (m *Storage) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure()
	m.ListCalled = true
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var keys []string
	for k := range m.Files {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
