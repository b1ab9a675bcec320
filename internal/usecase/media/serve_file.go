package media

import (
	"context"
	"errors"
	"log"

	"github.com/drussmiller/sparta-media-go/internal/mimetype"
	"github.com/drussmiller/sparta-media-go/internal/port"
	"github.com/drussmiller/sparta-media-go/internal/resolver"
)

type FileServer interface {
	ServeFile(ctx context.Context, in ServeFileInput) (ServeFileOutput, error)
}

type fileServerSrv struct {
	repo   port.AssetRepository
	reader port.StoreReader
	cache  port.Cache
}

// NewFileServer builds the latency-critical read path. reader is expected to
// be the circuit-breaker gateway so a degraded store surfaces as
// port.ErrStoreUnavailable within a bounded latency instead of hanging the
// request.
func NewFileServer(repo port.AssetRepository, reader port.StoreReader, cache port.Cache) FileServer {
	return &fileServerSrv{repo: repo, reader: reader, cache: cache}
}

type ServeFileInput struct {
	Ref string
}

type ServeFileOutput struct {
	Key         string
	ContentType string
	Data        []byte
}

// ServeFile resolves a logical file reference to stored bytes. Callers can
// rely on the error taxonomy: port.ErrObjectNotFound means every candidate
// was probed and none exists; port.ErrStoreUnavailable means the store is
// degraded and the miss is inconclusive.
func (s *fileServerSrv) ServeFile(ctx context.Context, in ServeFileInput) (ServeFileOutput, error) {
	logicalID := resolver.LogicalID(in.Ref)

	if out, ok := s.serveFromCache(ctx, logicalID); ok {
		return out, nil
	}

	key, data, err := resolver.Resolve(ctx, s.reader, logicalID, s.videoExtFor(ctx, logicalID))
	if err != nil {
		return ServeFileOutput{}, err
	}

	s.cache.SetResolvedKey(ctx, logicalID, key, ResolvedKeyTTL)

	return ServeFileOutput{Key: key, ContentType: mimetype.ForKey(key), Data: data}, nil
}

// serveFromCache short-circuits resolution when a previous read already
// located the asset. A stale entry (key since renamed by the repair scanner)
// is dropped and resolution falls through to the full probe sequence.
func (s *fileServerSrv) serveFromCache(ctx context.Context, logicalID string) (ServeFileOutput, bool) {
	key, err := s.cache.GetResolvedKey(ctx, logicalID)
	if err != nil || key == "" {
		return ServeFileOutput{}, false
	}

	data, err := s.reader.ReadFile(ctx, key)
	if err == nil {
		return ServeFileOutput{Key: key, ContentType: mimetype.ForKey(key), Data: data}, true
	}
	if errors.Is(err, port.ErrObjectNotFound) {
		if err := s.cache.DeleteResolvedKey(ctx, logicalID); err != nil {
			log.Printf("failed to drop stale resolved key for %q: %v", logicalID, err)
		}
	}
	return ServeFileOutput{}, false
}

// videoExtFor looks up the asset's original container extension so the
// resolver can include extension-swapped candidates. Best effort: an
// unknown asset just narrows the candidate list.
func (s *fileServerSrv) videoExtFor(ctx context.Context, logicalID string) string {
	asset, err := s.repo.GetBySourceKey(ctx, logicalID)
	if err != nil || asset == nil {
		return ""
	}
	return asset.OriginalExtension
}
