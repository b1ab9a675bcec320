package mock

import (
	"context"

	"github.com/drussmiller/sparta-media-go/internal/db"
	"github.com/drussmiller/sparta-media-go/internal/port"
)

// TaskDispatcher implements port.TaskDispatcher for tests.
type TaskDispatcher struct {
	EnqueueErr error

	ID     db.UUID
	Called bool
}

var _ port.TaskDispatcher = (*TaskDispatcher)(nil)

func (m *TaskDispatcher) EnqueueGenerateThumbnail(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.ID = id
	return m.EnqueueErr
}
