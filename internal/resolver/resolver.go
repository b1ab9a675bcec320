package resolver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/drussmiller/sparta-media-go/internal/port"
)

// Resolve probes the candidate keys for logicalID in priority order through
// the given reader and returns the first hit. The reader decides the failure
// semantics: latency-critical callers pass the circuit-breaker gateway,
// batch callers pass the raw client.
//
// It returns port.ErrObjectNotFound only once the full candidate list is
// exhausted. A systemic failure (store unavailable) aborts immediately, so
// a degraded store is surfaced as such instead of as a miss.
func Resolve(ctx context.Context, reader port.StoreReader, logicalID, videoExt string) (string, []byte, error) {
	for _, cand := range CandidateKeys(logicalID, videoExt) {
		data, err := reader.ReadFile(ctx, cand.Key)
		if err == nil {
			return cand.Key, data, nil
		}
		if errors.Is(err, port.ErrObjectNotFound) {
			continue
		}
		if errors.Is(err, port.ErrStoreUnavailable) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("probe read of %q failed: %w", cand.Key, err)
	}

	log.Printf("no candidate key found for asset %q", logicalID)
	return "", nil, port.ErrObjectNotFound
}

// knownRoots are storage prefixes a file reference may carry. Order matters:
// longest first so "uploads/thumbnails/" wins over "uploads/".
var knownRoots = []string{
	"uploads/thumbnails/",
	"media/thumbnails/",
	"thumbnails/",
	"uploads/",
	"media/",
}

// LogicalID derives the stable asset identifier from a file reference by
// stripping any known storage root, role suffix and extension.
func LogicalID(ref string) string {
	ref = strings.TrimPrefix(path.Clean("/"+ref), "/")
	for _, root := range knownRoots {
		if strings.HasPrefix(ref, root) {
			ref = strings.TrimPrefix(ref, root)
			break
		}
	}
	ref = strings.TrimSuffix(ref, path.Ext(ref))
	for _, suffix := range []string{"-poster", "-thumb", "_thumb"} {
		if strings.HasSuffix(ref, suffix) {
			ref = strings.TrimSuffix(ref, suffix)
			break
		}
	}
	return ref
}
