package model

import (
	"time"

	"github.com/drussmiller/sparta-media-go/internal/db"
)

type AssetStatus string

const (
	AssetStatusPending   AssetStatus = "pending"
	AssetStatusCompleted AssetStatus = "completed"
	AssetStatusFailed    AssetStatus = "failed"
)

// MediaAsset is a single user-submitted video. SourceKey is the logical
// identifier, stable across every rename the storage layer has gone through.
type MediaAsset struct {
	ID                db.UUID     `json:"id"`
	SourceKey         string      `json:"source_key"`
	OriginalExtension string      `json:"original_extension"`
	SizeBytes         int64       `json:"size_bytes"`
	Status            AssetStatus `json:"status"`
	FailureMessage    *string     `json:"failure_message,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

type ThumbnailRole string

const (
	RolePrimary ThumbnailRole = "primary"
	RolePoster  ThumbnailRole = "poster"
	// RoleLegacyDuplicate marks copies written under historical key layouts
	// for backward compatibility. Same bytes, different locations.
	RoleLegacyDuplicate ThumbnailRole = "legacy-duplicate"
)

type ThumbnailFormat string

const (
	FormatRaster ThumbnailFormat = "raster"
	FormatVector ThumbnailFormat = "vector"
)

// ThumbnailVariant is a derived still image for a MediaAsset. At most one
// variant exists per role; legacy-duplicate rows may share bytes with the
// primary.
type ThumbnailVariant struct {
	ID          db.UUID         `json:"id"`
	AssetID     db.UUID         `json:"asset_id"`
	ObjectKey   string          `json:"object_key"`
	Role        ThumbnailRole   `json:"role"`
	Format      ThumbnailFormat `json:"format"`
	SizeBytes   int64           `json:"size_bytes"`
	IsFallback  bool            `json:"is_fallback"`
	GeneratedAt time.Time       `json:"generated_at"`
}
