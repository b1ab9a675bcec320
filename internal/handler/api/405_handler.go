package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)

		_ = json.NewEncoder(w).Encode(fmt.Sprintf("Method %s is not allowed on %s", r.Method, r.URL.Path))
	}
}
