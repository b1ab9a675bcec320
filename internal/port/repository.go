package port

import (
	"context"

	"github.com/drussmiller/sparta-media-go/internal/db"
	"github.com/drussmiller/sparta-media-go/internal/model"
)

// AssetRepository persists media assets and their derived thumbnails.
type AssetRepository interface {
	Create(ctx context.Context, asset *model.MediaAsset) error
	Update(ctx context.Context, asset *model.MediaAsset) error
	GetByID(ctx context.Context, id db.UUID) (*model.MediaAsset, error)
	GetBySourceKey(ctx context.Context, sourceKey string) (*model.MediaAsset, error)
	// ReplaceVariants swaps the full set of thumbnail variants for an asset.
	// Variants are only ever mutated by full replacement.
	ReplaceVariants(ctx context.Context, assetID db.UUID, variants []model.ThumbnailVariant) error
	ListVariants(ctx context.Context, assetID db.UUID) ([]model.ThumbnailVariant, error)
}
