package store

import (
	"sort"

	"github.com/thebtf/promptlab/pkg/models"
)

// CreateCollection stores a new collection and returns it.
func (s *Store) CreateCollection(draft models.CollectionDraft) (*models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &models.Collection{
		ID:          s.newID(),
		Name:        draft.Name,
		Description: draft.Description,
		CreatedAt:   s.timestamp(),
	}
	s.collections[c.ID] = c
	return c.Clone(), nil
}

// GetCollection returns a collection by id.
func (s *Store) GetCollection(id string) (*models.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[id]
	if !ok {
		return nil, ErrCollectionNotFound
	}
	return c.Clone(), nil
}

// ListCollections returns all collections, oldest first with id as tiebreak
// so the order is deterministic.
func (s *Store) ListCollections() []*models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Collection, 0, len(s.collections))
	for _, c := range s.collections {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// DeleteCollection removes a collection and clears collection_id on every
// prompt that referenced it. Disassociation is not a content change: it does
// not touch updated_at, produce versions, or rewrite historical snapshots,
// which keep the original collection_id as a record of the past.
func (s *Store) DeleteCollection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[id]; !ok {
		return ErrCollectionNotFound
	}
	for _, p := range s.prompts {
		if p.CollectionID != nil && *p.CollectionID == id {
			p.CollectionID = nil
		}
	}
	delete(s.collections, id)
	return nil
}
