package server

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/thebtf/promptlab/internal/store"
	"github.com/thebtf/promptlab/internal/tags"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// respondStoreError maps the store's typed failures onto status codes.
// Expected conditions are client errors; anything else is a 500.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrPromptNotFound),
		errors.Is(err, store.ErrCollectionNotFound),
		errors.Is(err, store.ErrVersionNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrInvalidCollection),
		errors.Is(err, tags.ErrConstraint):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("Unexpected store error")
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
