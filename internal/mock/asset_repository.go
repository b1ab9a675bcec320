package mock

import (
	"context"

	"github.com/drussmiller/sparta-media-go/internal/db"
	"github.com/drussmiller/sparta-media-go/internal/model"
	"github.com/drussmiller/sparta-media-go/internal/port"
)

// AssetRepository implements port.AssetRepository for tests.
type AssetRepository struct {
	// stored values
	GetByIDOut        *model.MediaAsset
	GetBySourceKeyOut *model.MediaAsset
	ListVariantsOut   []model.ThumbnailVariant

	// errors
	CreateErr          error
	UpdateErr          error
	GetByIDErr         error
	GetBySourceKeyErr  error
	ReplaceVariantsErr error
	ListVariantsErr    error

	// captured inputs
	CreatedAsset     *model.MediaAsset
	UpdatedAsset     *model.MediaAsset
	ReplacedAssetID  db.UUID
	ReplacedVariants []model.ThumbnailVariant

	// call flags
	CreateCalled          bool
	UpdateCalled          bool
	GetByIDCalled         bool
	GetBySourceKeyCalled  bool
	ReplaceVariantsCalled bool
	ListVariantsCalled    bool
}

var _ port.AssetRepository = (*AssetRepository)(nil)

func (m *AssetRepository) Create(ctx context.Context, asset *model.MediaAsset) error {
	m.CreateCalled = true
	m.CreatedAsset = asset
	return m.CreateErr
}

func (m *AssetRepository) Update(ctx context.Context, asset *model.MediaAsset) error {
	m.UpdateCalled = true
	m.UpdatedAsset = asset
	return m.UpdateErr
}

func (m *AssetRepository) GetByID(ctx context.Context, id db.UUID) (*model.MediaAsset, error) {
	m.GetByIDCalled = true
	if m.GetByIDErr != nil {
		return nil, m.GetByIDErr
	}
	return m.GetByIDOut, nil
}

func (m *AssetRepository) GetBySourceKey(ctx context.Context, sourceKey string) (*model.MediaAsset, error) {
	m.GetBySourceKeyCalled = true
	if m.GetBySourceKeyErr != nil {
		return nil, m.GetBySourceKeyErr
	}
	return m.GetBySourceKeyOut, nil
}

func (m *AssetRepository) ReplaceVariants(ctx context.Context, assetID db.UUID, variants []model.ThumbnailVariant) error {
	m.ReplaceVariantsCalled = true
	m.ReplacedAssetID = assetID
	m.ReplacedVariants = variants
	return m.ReplaceVariantsErr
}

func (m *AssetRepository) ListVariants(ctx context.Context, assetID db.UUID) ([]model.ThumbnailVariant, error) {
	m.ListVariantsCalled = true
	if m.ListVariantsErr != nil {
		return nil, m.ListVariantsErr
	}
	return m.ListVariantsOut, nil
}
