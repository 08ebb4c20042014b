package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"trip-scheduler-service/internal/api/dto"
	"trip-scheduler-service/internal/ports"
)

// SuggestHandler serves address autocomplete candidates.
type SuggestHandler struct {
	Geocoder ports.SuggestingGeocoder
	Log      zerolog.Logger
}

func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, h.Log, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) < 2 {
		writeJSON(w, r, h.Log, http.StatusOK, dto.SuggestResponse{Suggestions: []dto.SuggestionResponse{}})
		return
	}

	suggestions, err := h.Geocoder.Suggest(r.Context(), query)
	if err != nil {
		h.Log.Warn().Err(err).Msg("suggest failed")
		writeError(w, r, h.Log, http.StatusBadGateway, "address lookup failed; please try again")
		return
	}

	res := dto.SuggestResponse{Suggestions: make([]dto.SuggestionResponse, 0, len(suggestions))}
	for _, s := range suggestions {
		res.Suggestions = append(res.Suggestions, dto.SuggestionResponse{
			Label: s.Label,
			Lat:   s.Coordinates.Lat,
			Lon:   s.Coordinates.Lon,
		})
	}

	writeJSON(w, r, h.Log, http.StatusOK, res)
}
