package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/drussmiller/sparta-media-go/internal/usecase/media"
	"github.com/drussmiller/sparta-media-go/internal/validation"
)

// RegisterUploadHandler records a pending asset ahead of the actual byte
// push, which happens against the blob store directly.
func RegisterUploadHandler(svc media.UploadRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in media.RegisterUploadInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid JSON payload", err)
			return
		}

		if err := validation.ValidateStruct(&in); err != nil {
			errsJson, jErr := validation.ErrorsToJson(err)
			if jErr != nil {
				WriteError(w, http.StatusInternalServerError, "Could not serialise validation errors", jErr)
				return
			}
			WriteError(w, http.StatusBadRequest, errsJson, nil)
			return
		}

		asset, err := svc.RegisterUpload(r.Context(), in)
		if err != nil {
			if errors.Is(err, media.ErrDuplicateSourceKey) {
				WriteError(w, http.StatusConflict, "Source key already registered", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not register upload", err)
			return
		}

		RespondJSON(w, http.StatusCreated, asset)
		log.Printf("✅  Registered upload for asset %q", asset.SourceKey)
	}
}
