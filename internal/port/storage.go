package port

import (
	"context"
	"errors"
	"io"
)

// Storage-level sentinel errors. Adapters map their backend's error codes
// onto these so callers never have to inspect vendor errors.
var (
	ErrObjectNotFound   = errors.New("storage: object not found")
	ErrBucketNotFound   = errors.New("storage: bucket not found")
	ErrUnauthorized     = errors.New("storage: unauthorized")
	ErrStoreUnavailable = errors.New("storage: temporarily unavailable")
	ErrInternal         = errors.New("storage: internal error")
)

// FileInfo represents metadata about a stored object.
type FileInfo struct {
	SizeBytes   int64
	ContentType string
}

// StoreReader is the read-only slice of Storage used by latency-sensitive
// serving paths. The circuit-breaker gateway implements it too, so callers
// can be handed either the raw client or the guarded one.
type StoreReader interface {
	ReadFile(ctx context.Context, fileKey string) ([]byte, error)
	FileExists(ctx context.Context, fileKey string) (bool, error)
}

// Storage defines blob store operations over a flat key namespace.
// Keys use "/" as a conventional separator only; there is no atomic rename,
// rename is write-new + delete-old.
type Storage interface {
	StoreReader
	InitBucket() error
	StatFile(ctx context.Context, fileKey string) (FileInfo, error)
	GetFile(ctx context.Context, fileKey string) (io.ReadCloser, error)
	SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
	RemoveFile(ctx context.Context, fileKey string) error
	CopyFile(ctx context.Context, srcKey, destKey string) error
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}
