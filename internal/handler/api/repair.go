package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/drussmiller/sparta-media-go/internal/usecase/media"
	"github.com/drussmiller/sparta-media-go/internal/validation"
)

// RepairHandler triggers a repair scan on demand and returns its summary
// counts. Body is optional; an empty body scans the default roots.
func RepairHandler(svc media.RepairRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in media.RunRepairInput

		body, err := io.ReadAll(r.Body)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Could not read request body", err)
			return
		}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &in); err != nil {
				WriteError(w, http.StatusBadRequest, "Invalid JSON payload", err)
				return
			}
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

		summary, err := svc.RunRepair(r.Context(), in)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Repair scan failed", err)
			return
		}

		RespondJSON(w, http.StatusOK, summary)
		log.Printf("✅  Repair scan finished: checked=%d fixed=%d skipped=%d errors=%d",
			summary.Checked, summary.Fixed, summary.Skipped, summary.Errors)
	}
}
