package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/drussmiller/sparta-media-go/internal/db"
	"github.com/drussmiller/sparta-media-go/internal/model"
	"github.com/drussmiller/sparta-media-go/internal/port"
	"github.com/drussmiller/sparta-media-go/internal/resolver"
	"github.com/drussmiller/sparta-media-go/internal/thumbnail"
)

type ThumbnailGenerator interface {
	GenerateThumbnail(ctx context.Context, in GenerateThumbnailInput) (GenerateThumbnailOutput, error)
}

type PipelineOptions struct {
	// Offsets is the ordered extraction attempt sequence in seconds.
	Offsets []float64
	// WriteLegacyKeys also writes the primary bytes under historical
	// role/location keys for consumers deployed against old layouts.
	WriteLegacyKeys bool
	PosterWidth     int
	PosterHeight    int
	TmpDir          string
}

type thumbnailGeneratorSrv struct {
	repo      port.AssetRepository
	strg      port.Storage
	extractor port.FrameExtractor
	cache     port.Cache
	opts      PipelineOptions
}

func NewThumbnailGenerator(repo port.AssetRepository, strg port.Storage, extractor port.FrameExtractor, cache port.Cache, opts PipelineOptions) ThumbnailGenerator {
	if len(opts.Offsets) == 0 {
		opts.Offsets = DefaultOffsets
	}
	if opts.TmpDir == "" {
		opts.TmpDir = os.TempDir()
	}
	return &thumbnailGeneratorSrv{repo: repo, strg: strg, extractor: extractor, cache: cache, opts: opts}
}

type GenerateThumbnailInput struct {
	ID db.UUID
}

type GenerateThumbnailOutput struct {
	Variants   []model.ThumbnailVariant
	IsFallback bool
}

// GenerateThumbnail drives the whole pipeline for one asset: stage the
// source, try each offset in order, fall back to the synthesized placeholder
// when extraction is impossible, then publish the result under the canonical
// keys. Total extraction failure is not an error to the caller; the pipeline
// still succeeds with degraded content.
func (s *thumbnailGeneratorSrv) GenerateThumbnail(ctx context.Context, in GenerateThumbnailInput) (GenerateThumbnailOutput, error) {
	asset, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return GenerateThumbnailOutput{}, err
	}
	if asset.Status != model.AssetStatusCompleted {
		return GenerateThumbnailOutput{}, errors.New("asset status should be 'completed' to derive thumbnails")
	}

	srcPath, cleanup, err := s.stageSource(ctx, asset)
	if err != nil {
		if !errors.Is(err, port.ErrObjectNotFound) && !errors.Is(err, errEmptySource) {
			return GenerateThumbnailOutput{}, err
		}
		// missing or empty source: the extractor is never invoked
		log.Printf("source for asset %q unavailable (%v), using fallback thumbnail", asset.SourceKey, err)
		return s.publishFallback(ctx, asset)
	}
	defer cleanup()

	framePath, err := s.extractAnyOffset(ctx, srcPath, asset.SourceKey)
	if err != nil {
		log.Printf("all extraction offsets failed for asset %q: %v", asset.SourceKey, err)
		return s.publishFallback(ctx, asset)
	}
	defer func() {
		if err := os.Remove(framePath); err != nil {
			log.Printf("failed to remove temp frame %q: %v", framePath, err)
		}
	}()

	frame, err := os.ReadFile(framePath)
	if err != nil {
		return GenerateThumbnailOutput{}, fmt.Errorf("reading extracted frame failed: %w", err)
	}

	return s.publishFrame(ctx, asset, frame)
}

var errEmptySource = errors.New("source file is empty")

// stageSource downloads the uploaded video to a local temp file for the
// extractor subprocess to read.
func (s *thumbnailGeneratorSrv) stageSource(ctx context.Context, asset *model.MediaAsset) (string, func(), error) {
	srcKey := resolver.SourceObjectKey(asset.SourceKey, asset.OriginalExtension)

	obj, err := s.strg.GetFile(ctx, srcKey)
	if err != nil {
		return "", nil, err
	}
	defer func() {
		if err := obj.Close(); err != nil {
			log.Printf("failed to close reader for %q: %v", srcKey, err)
		}
	}()

	tmp, err := os.CreateTemp(s.opts.TmpDir, "src_*"+asset.OriginalExtension)
	if err != nil {
		return "", nil, fmt.Errorf("could not create temp source file: %w", err)
	}
	cleanup := func() {
		if err := os.Remove(tmp.Name()); err != nil {
			log.Printf("failed to remove temp source %q: %v", tmp.Name(), err)
		}
	}

	n, err := io.Copy(tmp, obj)
	if cErr := tmp.Close(); cErr != nil && err == nil {
		err = cErr
	}
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("staging source %q failed: %w", srcKey, err)
	}
	if n == 0 {
		cleanup()
		return "", nil, errEmptySource
	}

	return tmp.Name(), cleanup, nil
}

// extractAnyOffset tries each candidate offset strictly in sequence and
// returns the first successful frame. Temp outputs of failed attempts are
// removed as it goes.
func (s *thumbnailGeneratorSrv) extractAnyOffset(ctx context.Context, srcPath, sourceKey string) (string, error) {
	var lastErr error
	for _, offset := range s.opts.Offsets {
		outPath := filepath.Join(s.opts.TmpDir, fmt.Sprintf("thumb_%s_%04.1f.jpg", filepath.Base(srcPath), offset))

		if err := s.extractor.Extract(ctx, srcPath, outPath, offset); err != nil {
			lastErr = err
			log.Printf("extraction at offset %.2fs failed for asset %q: %v", offset, sourceKey, err)
			if rmErr := os.Remove(outPath); rmErr != nil && !os.IsNotExist(rmErr) {
				log.Printf("failed to discard temp output %q: %v", outPath, rmErr)
			}
			continue
		}
		return outPath, nil
	}
	return "", lastErr
}

// publishFrame writes a successfully extracted frame under the canonical
// primary key, derives the WebP poster, and optionally duplicates the
// primary bytes under the legacy keys.
func (s *thumbnailGeneratorSrv) publishFrame(ctx context.Context, asset *model.MediaAsset, frame []byte) (GenerateThumbnailOutput, error) {
	now := time.Now().UTC()
	primaryKey := resolver.CanonicalThumbKey(asset.SourceKey)

	if err := s.saveBytes(ctx, primaryKey, frame, "image/jpeg"); err != nil {
		return GenerateThumbnailOutput{}, err
	}
	variants := []model.ThumbnailVariant{{
		ID:          db.NewUUID(),
		AssetID:     asset.ID,
		ObjectKey:   primaryKey,
		Role:        model.RolePrimary,
		Format:      model.FormatRaster,
		SizeBytes:   int64(len(frame)),
		IsFallback:  false,
		GeneratedAt: now,
	}}

	poster, err := thumbnail.EncodePoster(bytes.NewReader(frame), s.opts.PosterWidth, s.opts.PosterHeight)
	if err != nil {
		// the primary is already published; a missing poster only loses
		// the smaller variant
		log.Printf("poster encode failed for asset %q: %v", asset.SourceKey, err)
	} else {
		posterKey := resolver.PosterKey(asset.SourceKey)
		if err := s.saveBytes(ctx, posterKey, poster, "image/webp"); err != nil {
			return GenerateThumbnailOutput{}, err
		}
		variants = append(variants, model.ThumbnailVariant{
			ID:          db.NewUUID(),
			AssetID:     asset.ID,
			ObjectKey:   posterKey,
			Role:        model.RolePoster,
			Format:      model.FormatRaster,
			SizeBytes:   int64(len(poster)),
			IsFallback:  false,
			GeneratedAt: now,
		})
	}

	if s.opts.WriteLegacyKeys {
		for _, legacyKey := range resolver.LegacyDuplicateKeys(asset.SourceKey) {
			if err := s.saveBytes(ctx, legacyKey, frame, "image/jpeg"); err != nil {
				return GenerateThumbnailOutput{}, err
			}
			variants = append(variants, model.ThumbnailVariant{
				ID:          db.NewUUID(),
				AssetID:     asset.ID,
				ObjectKey:   legacyKey,
				Role:        model.RoleLegacyDuplicate,
				Format:      model.FormatRaster,
				SizeBytes:   int64(len(frame)),
				IsFallback:  false,
				GeneratedAt: now,
			})
		}
	}

	return s.record(ctx, asset, variants, false)
}

// publishFallback writes the deterministic vector placeholder. It is always
// written under the vector extension; the historical generator that reused
// the video's extension here is what the repair scanner cleans up after.
func (s *thumbnailGeneratorSrv) publishFallback(ctx context.Context, asset *model.MediaAsset) (GenerateThumbnailOutput, error) {
	data := thumbnail.GenerateFallback()
	key := resolver.FallbackKey(asset.SourceKey)

	if err := s.saveBytes(ctx, key, data, thumbnail.FallbackContentType); err != nil {
		return GenerateThumbnailOutput{}, err
	}

	variants := []model.ThumbnailVariant{{
		ID:          db.NewUUID(),
		AssetID:     asset.ID,
		ObjectKey:   key,
		Role:        model.RolePrimary,
		Format:      model.FormatVector,
		SizeBytes:   int64(len(data)),
		IsFallback:  true,
		GeneratedAt: time.Now().UTC(),
	}}

	return s.record(ctx, asset, variants, true)
}

func (s *thumbnailGeneratorSrv) record(ctx context.Context, asset *model.MediaAsset, variants []model.ThumbnailVariant, isFallback bool) (GenerateThumbnailOutput, error) {
	if err := s.repo.ReplaceVariants(ctx, asset.ID, variants); err != nil {
		return GenerateThumbnailOutput{}, fmt.Errorf("recording thumbnail variants failed: %w", err)
	}

	// drop any stale resolution so the next read finds the fresh keys
	if err := s.cache.DeleteResolvedKey(ctx, asset.SourceKey); err != nil {
		log.Printf("failed to invalidate resolved key for asset %q: %v", asset.SourceKey, err)
	}

	return GenerateThumbnailOutput{Variants: variants, IsFallback: isFallback}, nil
}

func (s *thumbnailGeneratorSrv) saveBytes(ctx context.Context, key string, data []byte, contentType string) error {
	opts := map[string]string{"Content-Type": contentType}
	if err := s.strg.SaveFile(ctx, key, bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return fmt.Errorf("writing %q failed: %w", key, err)
	}
	return nil
}
