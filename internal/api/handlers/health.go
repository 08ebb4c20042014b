package handlers

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Health provides a minimal liveness check endpoint.
func Health(log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			writeError(w, r, log, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		writeJSON(w, r, log, http.StatusOK, map[string]string{"status": "ok"})
	}
}
