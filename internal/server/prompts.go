package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/thebtf/promptlab/internal/query"
	"github.com/thebtf/promptlab/pkg/models"
)

// Input shape limits carried over from the API contract.
const (
	maxTitleLength       = 200
	maxDescriptionLength = 500
	maxNameLength        = 100
)

func validatePromptShape(title, content, description string) string {
	switch {
	case strings.TrimSpace(title) == "":
		return "title is required"
	case len(title) > maxTitleLength:
		return "title must be at most 200 characters"
	case content == "":
		return "content is required"
	case len(description) > maxDescriptionLength:
		return "description must be at most 500 characters"
	}
	return ""
}

func (s *Service) handleListPrompts(w http.ResponseWriter, r *http.Request) {
	params := query.Params{
		Collection: r.URL.Query().Get("collection_id"),
		Search:     r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				params.Tags = append(params.Tags, tag)
			}
		}
	}

	prompts := query.Run(s.store.ListPrompts(), params)
	respondJSON(w, http.StatusOK, map[string]any{
		"prompts": prompts,
		"total":   len(prompts),
	})
}

func (s *Service) handleCreatePrompt(w http.ResponseWriter, r *http.Request) {
	var draft models.PromptDraft
	if err := decodeJSON(r, &draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validatePromptShape(draft.Title, draft.Content, draft.Description); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	prompt, err := s.store.CreatePrompt(draft)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, prompt)
}

func (s *Service) handleGetPrompt(w http.ResponseWriter, r *http.Request) {
	prompt, err := s.store.GetPrompt(chi.URLParam(r, "promptID"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, prompt)
}

func (s *Service) handleReplacePrompt(w http.ResponseWriter, r *http.Request) {
	var draft models.PromptDraft
	if err := decodeJSON(r, &draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validatePromptShape(draft.Title, draft.Content, draft.Description); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	prompt, err := s.store.ReplacePrompt(chi.URLParam(r, "promptID"), draft)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, prompt)
}

func (s *Service) handlePatchPrompt(w http.ResponseWriter, r *http.Request) {
	var patch models.PromptPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validatePatchShape(patch); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	prompt, err := s.store.PatchPrompt(chi.URLParam(r, "promptID"), patch)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, prompt)
}

func validatePatchShape(patch models.PromptPatch) string {
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return "title cannot be empty"
		}
		if len(*patch.Title) > maxTitleLength {
			return "title must be at most 200 characters"
		}
	}
	if patch.Content != nil && *patch.Content == "" {
		return "content cannot be empty"
	}
	if patch.Description != nil && len(*patch.Description) > maxDescriptionLength {
		return "description must be at most 500 characters"
	}
	return ""
}

func (s *Service) handleDeletePrompt(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeletePrompt(chi.URLParam(r, "promptID")); err != nil {
		respondStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handlePromptVariables(w http.ResponseWriter, r *http.Request) {
	prompt, err := s.store.GetPrompt(chi.URLParam(r, "promptID"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"variables": query.Variables(prompt.Content),
	})
}
