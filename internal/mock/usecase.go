package mock

import (
	"context"

	"github.com/drussmiller/sparta-media-go/internal/db"
	"github.com/drussmiller/sparta-media-go/internal/model"
	"github.com/drussmiller/sparta-media-go/internal/repair"
	"github.com/drussmiller/sparta-media-go/internal/usecase/media"
)

// ThumbnailGenerator implements media.ThumbnailGenerator for tests.
type ThumbnailGenerator struct {
	Out media.GenerateThumbnailOutput
	Err error

	ID     db.UUID
	Called bool
}

var _ media.ThumbnailGenerator = (*ThumbnailGenerator)(nil)

func (m *ThumbnailGenerator) GenerateThumbnail(ctx context.Context, in media.GenerateThumbnailInput) (media.GenerateThumbnailOutput, error) {
	m.Called = true
	m.ID = in.ID
	if m.Err != nil {
		return media.GenerateThumbnailOutput{}, m.Err
	}
	return m.Out, nil
}

// FileServer implements media.FileServer for tests.
type FileServer struct {
	Out media.ServeFileOutput
	Err error

	Ref    string
	Called bool
}

var _ media.FileServer = (*FileServer)(nil)

func (m *FileServer) ServeFile(ctx context.Context, in media.ServeFileInput) (media.ServeFileOutput, error) {
	m.Called = true
	m.Ref = in.Ref
	if m.Err != nil {
		return media.ServeFileOutput{}, m.Err
	}
	return m.Out, nil
}

// RepairRunner implements media.RepairRunner for tests.
type RepairRunner struct {
	Out repair.Summary
	Err error

	In     media.RunRepairInput
	Called bool
}

var _ media.RepairRunner = (*RepairRunner)(nil)

func (m *RepairRunner) RunRepair(ctx context.Context, in media.RunRepairInput) (repair.Summary, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return repair.Summary{}, m.Err
	}
	return m.Out, nil
}

// UploadRegistrar implements media.UploadRegistrar for tests.
type UploadRegistrar struct {
	Out *model.MediaAsset
	Err error

	In     media.RegisterUploadInput
	Called bool
}

var _ media.UploadRegistrar = (*UploadRegistrar)(nil)

func (m *UploadRegistrar) RegisterUpload(ctx context.Context, in media.RegisterUploadInput) (*model.MediaAsset, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Out, nil
}

// UploadFinaliser implements media.UploadFinaliser for tests.
type UploadFinaliser struct {
	Out *model.MediaAsset
	Err error

	ID     db.UUID
	Called bool
}

var _ media.UploadFinaliser = (*UploadFinaliser)(nil)

func (m *UploadFinaliser) FinaliseUpload(ctx context.Context, in media.FinaliseUploadInput) (*model.MediaAsset, error) {
	m.Called = true
	m.ID = in.ID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Out, nil
}
