package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/drussmiller/sparta-media-go/internal/db"
	"github.com/drussmiller/sparta-media-go/internal/model"
	"github.com/drussmiller/sparta-media-go/internal/port"
	media "github.com/drussmiller/sparta-media-go/internal/usecase/media"
	"github.com/go-sql-driver/mysql"
)

type AssetRepository struct {
	db *sql.DB
}

// compile-time check: *AssetRepository must satisfy port.AssetRepository
var _ port.AssetRepository = (*AssetRepository)(nil)

func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, asset *model.MediaAsset) error {
	log.Printf("creating database record for asset %q, at status %q...", asset.SourceKey, asset.Status)

	const query = `
      INSERT INTO media_assets
        (id, source_key, original_extension, size_bytes, status, failure_message)
      VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.SourceKey, asset.OriginalExtension,
		asset.SizeBytes, asset.Status, asset.FailureMessage,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return media.ErrDuplicateSourceKey
		}
		return err
	}
	return nil
}

func (r *AssetRepository) Update(ctx context.Context, asset *model.MediaAsset) error {
	log.Printf("updating database record for asset %q, with status %q...", asset.SourceKey, asset.Status)

	const query = `
      UPDATE media_assets
      SET
        original_extension = ?,
        size_bytes         = ?,
        status             = ?,
        failure_message    = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		asset.OriginalExtension,
		asset.SizeBytes,
		asset.Status,
		asset.FailureMessage,
		asset.ID,
	)
	if err != nil {
		return err
	}
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id db.UUID) (*model.MediaAsset, error) {
	const query = `
      SELECT id, source_key, original_extension, size_bytes, status, failure_message, created_at, updated_at
      FROM media_assets
      WHERE id = ?
    `
	return r.scanAsset(r.db.QueryRowContext(ctx, query, id))
}

func (r *AssetRepository) GetBySourceKey(ctx context.Context, sourceKey string) (*model.MediaAsset, error) {
	const query = `
      SELECT id, source_key, original_extension, size_bytes, status, failure_message, created_at, updated_at
      FROM media_assets
      WHERE source_key = ?
    `
	return r.scanAsset(r.db.QueryRowContext(ctx, query, sourceKey))
}

func (r *AssetRepository) scanAsset(row *sql.Row) (*model.MediaAsset, error) {
	var asset model.MediaAsset
	if err := row.Scan(
		&asset.ID,
		&asset.SourceKey,
		&asset.OriginalExtension,
		&asset.SizeBytes,
		&asset.Status,
		&asset.FailureMessage,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, media.ErrAssetNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// ReplaceVariants swaps the full variant set for an asset inside one
// transaction. Variants never receive partial updates.
func (r *AssetRepository) ReplaceVariants(ctx context.Context, assetID db.UUID, variants []model.ThumbnailVariant) error {
	log.Printf("replacing %d thumbnail variants for asset #%s...", len(variants), assetID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			log.Printf("rollback failed: %v", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM thumbnail_variants WHERE asset_id = ?`, assetID); err != nil {
		return fmt.Errorf("delete old variants: %w", err)
	}

	const insert = `
      INSERT INTO thumbnail_variants
        (id, asset_id, object_key, role, format, size_bytes, is_fallback, generated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	for _, v := range variants {
		if _, err := tx.ExecContext(ctx, insert,
			v.ID, v.AssetID, v.ObjectKey, v.Role, v.Format,
			v.SizeBytes, v.IsFallback, v.GeneratedAt,
		); err != nil {
			return fmt.Errorf("insert variant %q: %w", v.ObjectKey, err)
		}
	}

	return tx.Commit()
}

func (r *AssetRepository) ListVariants(ctx context.Context, assetID db.UUID) ([]model.ThumbnailVariant, error) {
	const query = `
      SELECT id, asset_id, object_key, role, format, size_bytes, is_fallback, generated_at
      FROM thumbnail_variants
      WHERE asset_id = ?
      ORDER BY role
    `
	rows, err := r.db.QueryContext(ctx, query, assetID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("closing rows failed: %v", err)
		}
	}()

	var variants []model.ThumbnailVariant
	for rows.Next() {
		var v model.ThumbnailVariant
		if err := rows.Scan(
			&v.ID, &v.AssetID, &v.ObjectKey, &v.Role, &v.Format,
			&v.SizeBytes, &v.IsFallback, &v.GeneratedAt,
		); err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}
