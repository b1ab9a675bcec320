package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/drussmiller/sparta-media-go/internal/db"
	"github.com/drussmiller/sparta-media-go/internal/model"
	"github.com/drussmiller/sparta-media-go/internal/port"
)

type UploadRegistrar interface {
	RegisterUpload(ctx context.Context, in RegisterUploadInput) (*model.MediaAsset, error)
}

type uploadRegistrarSrv struct {
	repo    port.AssetRepository
	newUUID func() db.UUID
}

func NewUploadRegistrar(repo port.AssetRepository, newUUID func() db.UUID) UploadRegistrar {
	return &uploadRegistrarSrv{repo: repo, newUUID: newUUID}
}

type RegisterUploadInput struct {
	SourceKey string `json:"source_key" validate:"required,min=1,max=255"`
	Extension string `json:"extension" validate:"required,startswith=."`
}

// RegisterUpload records a pending asset before the client starts pushing
// bytes. The asset only becomes eligible for thumbnail derivation once
// FinaliseUpload confirms the object landed.
func (s *uploadRegistrarSrv) RegisterUpload(ctx context.Context, in RegisterUploadInput) (*model.MediaAsset, error) {
	ext := strings.ToLower(in.Extension)
	if !IsExtensionAllowed(ext) {
		return nil, fmt.Errorf("unsupported video extension %q", in.Extension)
	}

	asset := &model.MediaAsset{
		ID:                s.newUUID(),
		SourceKey:         in.SourceKey,
		OriginalExtension: ext,
		Status:            model.AssetStatusPending,
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}
