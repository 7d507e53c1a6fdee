package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/thebtf/promptlab/pkg/models"
)

func (s *Service) handleListCollections(w http.ResponseWriter, r *http.Request) {
	collections := s.store.ListCollections()
	respondJSON(w, http.StatusOK, map[string]any{
		"collections": collections,
		"total":       len(collections),
	})
}

func (s *Service) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	var draft models.CollectionDraft
	if err := decodeJSON(r, &draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	switch {
	case strings.TrimSpace(draft.Name) == "":
		respondError(w, http.StatusBadRequest, "name is required")
		return
	case len(draft.Name) > maxNameLength:
		respondError(w, http.StatusBadRequest, "name must be at most 100 characters")
		return
	case len(draft.Description) > maxDescriptionLength:
		respondError(w, http.StatusBadRequest, "description must be at most 500 characters")
		return
	}

	collection, err := s.store.CreateCollection(draft)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, collection)
}

func (s *Service) handleGetCollection(w http.ResponseWriter, r *http.Request) {
	collection, err := s.store.GetCollection(chi.URLParam(r, "collectionID"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, collection)
}

func (s *Service) handleDeleteCollection(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteCollection(chi.URLParam(r, "collectionID")); err != nil {
		respondStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
