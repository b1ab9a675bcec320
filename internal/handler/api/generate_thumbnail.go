package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/drussmiller/sparta-media-go/internal/usecase/media"
)

// GenerateThumbnailHandler runs the derivation pipeline synchronously.
// Deployments with a worker enqueue instead; this endpoint exists for
// setups without Redis and for re-deriving a single asset by hand.
func GenerateThumbnailHandler(svc media.ThumbnailGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		out, err := svc.GenerateThumbnail(r.Context(), media.GenerateThumbnailInput{ID: id})
		if err != nil {
			if errors.Is(err, media.ErrAssetNotFound) {
				WriteError(w, http.StatusNotFound, "Asset not found", nil)
				return
			}
			WriteError(w, http.StatusUnprocessableEntity, "Could not derive thumbnails", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Derived %d thumbnail variant(s) for asset #%s", len(out.Variants), id)
	}
}
