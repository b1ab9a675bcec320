package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/drussmiller/sparta-media-go/internal/port"
	"github.com/drussmiller/sparta-media-go/internal/usecase/media"
	"github.com/go-chi/chi/v5"
)

// ServeFileHandler resolves a logical file reference and streams the bytes
// back. It keeps "not found" and "temporarily unavailable" distinct:
// collapsing them would make a transient storage outage look like missing
// content to both clients and monitoring.
func ServeFileHandler(svc media.FileServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := chi.URLParam(r, "*")
		if ref == "" {
			WriteError(w, http.StatusBadRequest, "file reference is required", nil)
			return
		}

		out, err := svc.ServeFile(r.Context(), media.ServeFileInput{Ref: ref})
		if err != nil {
			if errors.Is(err, port.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, "File not found", nil)
				return
			}
			if errors.Is(err, port.ErrStoreUnavailable) {
				w.Header().Set("Retry-After", "30")
				WriteError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not serve file", err)
			return
		}

		w.Header().Set("Content-Type", out.ContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(out.Data)))
		w.Header().Set("Cache-Control", "public, max-age=300")
		if _, err := w.Write(out.Data); err != nil {
			log.Printf("❌  Failed to write file payload for %q: %v", ref, err)
			return
		}
		log.Printf("✅  Served %q from key %q", ref, out.Key)
	}
}
