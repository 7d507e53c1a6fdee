package store

import (
	"sort"

	"github.com/thebtf/promptlab/internal/tags"
	"github.com/thebtf/promptlab/pkg/models"
)

// CreatePrompt validates the draft, stores a new prompt and records version 1.
// Validation runs before any mutation: a failing draft leaves the store
// untouched.
func (s *Store) CreatePrompt(draft models.PromptDraft) (*models.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized, err := tags.NormalizeAndValidate(draft.Tags, s.tagLimits)
	if err != nil {
		return nil, err
	}
	if err := s.checkCollectionRefLocked(draft.CollectionID); err != nil {
		return nil, err
	}

	now := s.timestamp()
	p := &models.Prompt{
		ID:           s.newID(),
		Title:        draft.Title,
		Content:      draft.Content,
		Description:  draft.Description,
		CollectionID: cloneRef(draft.CollectionID),
		Tags:         normalized,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.prompts[p.ID] = p
	s.recordVersionLocked(p)
	return p.Clone(), nil
}

// GetPrompt returns a prompt by id.
func (s *Store) GetPrompt(id string) (*models.Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prompts[id]
	if !ok {
		return nil, ErrPromptNotFound
	}
	return p.Clone(), nil
}

// ListPrompts returns a snapshot of all live prompts in unspecified order.
// The query pipeline applies its own deterministic ordering.
func (s *Store) ListPrompts() []*models.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Prompt, 0, len(s.prompts))
	for _, p := range s.prompts {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ReplacePrompt performs a full update: every draft field replaces the prior
// value, including a nil CollectionID clearing the association. A new version
// is recorded atomically with the update.
func (s *Store) ReplacePrompt(id string, draft models.PromptDraft) (*models.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prompts[id]
	if !ok {
		return nil, ErrPromptNotFound
	}
	normalized, err := tags.NormalizeAndValidate(draft.Tags, s.tagLimits)
	if err != nil {
		return nil, err
	}
	if err := s.checkCollectionRefLocked(draft.CollectionID); err != nil {
		return nil, err
	}

	p.Title = draft.Title
	p.Content = draft.Content
	p.Description = draft.Description
	p.CollectionID = cloneRef(draft.CollectionID)
	p.Tags = normalized
	p.UpdatedAt = s.timestamp()
	s.recordVersionLocked(p)
	return p.Clone(), nil
}

// PatchPrompt performs a partial update: only supplied fields change. An
// explicitly null collection_id clears the association; an absent one keeps
// it. A present empty tag list replaces tags with empty, a nil one keeps the
// existing set. A new version is recorded atomically with the update.
func (s *Store) PatchPrompt(id string, patch models.PromptPatch) (*models.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prompts[id]
	if !ok {
		return nil, ErrPromptNotFound
	}

	// Validate everything before the first write.
	var normalized []string
	if patch.Tags != nil {
		var err error
		normalized, err = tags.NormalizeAndValidate(patch.Tags, s.tagLimits)
		if err != nil {
			return nil, err
		}
	}
	if patch.CollectionID.Set {
		if err := s.checkCollectionRefLocked(patch.CollectionID.Value); err != nil {
			return nil, err
		}
	}

	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.CollectionID.Set {
		p.CollectionID = cloneRef(patch.CollectionID.Value)
	}
	if patch.Tags != nil {
		p.Tags = normalized
	}
	p.UpdatedAt = s.timestamp()
	s.recordVersionLocked(p)
	return p.Clone(), nil
}

// DeletePrompt removes a prompt and its entire version history atomically.
func (s *Store) DeletePrompt(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prompts[id]; !ok {
		return ErrPromptNotFound
	}
	delete(s.prompts, id)
	delete(s.versions, id)
	return nil
}

// checkCollectionRefLocked validates a collection_id reference before commit.
// A nil reference (no association) is always valid.
func (s *Store) checkCollectionRefLocked(ref *string) error {
	if ref == nil {
		return nil
	}
	if _, ok := s.collections[*ref]; !ok {
		return ErrInvalidCollection
	}
	return nil
}

func cloneRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	id := *ref
	return &id
}
