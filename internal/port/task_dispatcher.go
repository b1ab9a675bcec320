package port

import (
	"context"

	"github.com/drussmiller/sparta-media-go/internal/db"
)

// TaskDispatcher enqueues asynchronous media processing tasks.
type TaskDispatcher interface {
	EnqueueGenerateThumbnail(ctx context.Context, id db.UUID) error
}
