package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/thebtf/promptlab/internal/store"
)

func (s *Service) handleListVersions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	order := q.Get("order")
	if order == "" {
		order = store.OrderDesc
	}
	if order != store.OrderAsc && order != store.OrderDesc {
		respondError(w, http.StatusBadRequest, "order must be either 'asc' or 'desc'")
		return
	}

	limit, ok := parseIntParam(w, q.Get("limit"), "limit")
	if !ok {
		return
	}
	offset, ok := parseIntParam(w, q.Get("offset"), "offset")
	if !ok {
		return
	}

	versions, total, err := s.store.ListVersions(chi.URLParam(r, "promptID"), order, limit, offset)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"versions": versions,
		"total":    total,
	})
}

func (s *Service) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	number, ok := parseVersionNumber(w, r)
	if !ok {
		return
	}
	version, err := s.store.GetVersion(chi.URLParam(r, "promptID"), number)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, version)
}

func (s *Service) handleRevertVersion(w http.ResponseWriter, r *http.Request) {
	number, ok := parseVersionNumber(w, r)
	if !ok {
		return
	}
	prompt, err := s.store.Revert(chi.URLParam(r, "promptID"), number)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, prompt)
}

func parseVersionNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "versionNumber")
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		respondError(w, http.StatusBadRequest, "version number must be a positive integer")
		return 0, false
	}
	return number, true
}

func parseIntParam(w http.ResponseWriter, raw, name string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		respondError(w, http.StatusBadRequest, name+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}
