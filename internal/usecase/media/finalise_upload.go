package media

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/drussmiller/sparta-media-go/internal/db"
	"github.com/drussmiller/sparta-media-go/internal/model"
	"github.com/drussmiller/sparta-media-go/internal/port"
	"github.com/drussmiller/sparta-media-go/internal/resolver"
)

type UploadFinaliser interface {
	FinaliseUpload(ctx context.Context, in FinaliseUploadInput) (*model.MediaAsset, error)
}

type uploadFinaliserSrv struct {
	repo       port.AssetRepository
	strg       port.Storage
	dispatcher port.TaskDispatcher
}

func NewUploadFinaliser(repo port.AssetRepository, strg port.Storage, dispatcher port.TaskDispatcher) UploadFinaliser {
	return &uploadFinaliserSrv{repo: repo, strg: strg, dispatcher: dispatcher}
}

type FinaliseUploadInput struct {
	ID db.UUID
}

// FinaliseUpload verifies the uploaded object, marks the asset completed and
// enqueues thumbnail derivation. Idempotent for already-completed assets.
func (s *uploadFinaliserSrv) FinaliseUpload(ctx context.Context, in FinaliseUploadInput) (*model.MediaAsset, error) {
	asset, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if asset.Status == model.AssetStatusCompleted {
		return asset, nil
	}
	if asset.Status != model.AssetStatusPending {
		return nil, errors.New("asset status should be 'pending' to be finalised")
	}

	var finalErr error
	defer func() {
		if finalErr != nil {
			if markErr := s.markAsFailed(ctx, asset, finalErr.Error()); markErr != nil {
				log.Printf("markAsFailed failed for asset %q: %v", asset.SourceKey, markErr)
			}
		}
	}()

	srcKey := resolver.SourceObjectKey(asset.SourceKey, asset.OriginalExtension)
	info, err := s.strg.StatFile(ctx, srcKey)
	if err != nil {
		if errors.Is(err, port.ErrObjectNotFound) {
			finalErr = fmt.Errorf("uploaded object %q not found", srcKey)
		} else {
			finalErr = fmt.Errorf("stat of %q failed: %w", srcKey, err)
		}
		return nil, finalErr
	}

	if info.SizeBytes < MinFileSize {
		finalErr = fmt.Errorf("uploaded object %q is empty", srcKey)
		return nil, finalErr
	}
	if info.SizeBytes > MaxFileSize {
		finalErr = fmt.Errorf("uploaded object %q too large: %d bytes (max %d)", srcKey, info.SizeBytes, MaxFileSize)
		return nil, finalErr
	}

	asset.Status = model.AssetStatusCompleted
	asset.SizeBytes = info.SizeBytes
	if err := s.repo.Update(ctx, asset); err != nil {
		finalErr = fmt.Errorf("updating asset %q failed: %w", asset.SourceKey, err)
		return nil, finalErr
	}

	if err := s.dispatcher.EnqueueGenerateThumbnail(ctx, asset.ID); err != nil {
		// the asset is live; derivation can be replayed by the backfill
		// command if the queue push was lost
		log.Printf("failed to enqueue thumbnail generation for asset %q: %v", asset.SourceKey, err)
	}

	return asset, nil
}

func (s *uploadFinaliserSrv) markAsFailed(ctx context.Context, asset *model.MediaAsset, reason string) error {
	asset.Status = model.AssetStatusFailed
	asset.FailureMessage = &reason
	return s.repo.Update(ctx, asset)
}
