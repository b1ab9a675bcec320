package worker

import (
	"context"
	"log"

	"github.com/drussmiller/sparta-media-go/internal/db"
	"github.com/drussmiller/sparta-media-go/internal/task"
	"github.com/drussmiller/sparta-media-go/internal/usecase/media"
	"github.com/google/uuid"
)

// GenerateThumbnailHandler handles a generate-thumbnail task.
// It converts the incoming task payload to the input expected by
// the media.ThumbnailGenerator service and delegates the call.
func GenerateThumbnailHandler(ctx context.Context, p task.GenerateThumbnailPayload, svc media.ThumbnailGenerator) error {
	id, err := uuid.Parse(p.AssetID)
	if err != nil {
		log.Printf("❌  Invalid asset ID %q: %v", p.AssetID, err)
		return err
	}

	in := media.GenerateThumbnailInput{ID: db.UUID(id)}
	out, err := svc.GenerateThumbnail(ctx, in)
	if err != nil {
		log.Printf("❌  Failed to derive thumbnails for asset #%s: %v", id, err)
		return err
	}

	if out.IsFallback {
		log.Printf("⚠️  Published fallback thumbnail for asset #%s", id)
	} else {
		log.Printf("✅  Derived %d thumbnail variant(s) for asset #%s", len(out.Variants), id)
	}
	return nil
}
