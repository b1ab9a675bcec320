package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/drussmiller/sparta-media-go/internal/usecase/media"
)

// FinaliseUploadHandler confirms the uploaded object landed, marks the
// asset completed and enqueues thumbnail derivation.
func FinaliseUploadHandler(svc media.UploadFinaliser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		asset, err := svc.FinaliseUpload(r.Context(), media.FinaliseUploadInput{ID: id})
		if err != nil {
			if errors.Is(err, media.ErrAssetNotFound) {
				WriteError(w, http.StatusNotFound, "Asset not found", nil)
				return
			}
			WriteError(w, http.StatusUnprocessableEntity, "Could not finalise upload", err)
			return
		}

		RespondJSON(w, http.StatusOK, asset)
		log.Printf("✅  Finalised upload for asset %q", asset.SourceKey)
	}
}
