package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, r *http.Request, log zerolog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("encode response failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log zerolog.Logger, status int, msg string) {
	writeJSON(w, r, log, status, map[string]string{"error": msg})
}
