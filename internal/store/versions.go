package store

import (
	"fmt"

	"github.com/thebtf/promptlab/pkg/models"
)

// Version list ordering.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// recordVersionLocked appends an immutable snapshot of p to the ledger,
// assigns the next version number and updates p.LatestVersion. Pruning runs
// after the append, so the new entry can never be evicted by its own write.
// Caller must hold the write lock.
func (s *Store) recordVersionLocked(p *models.Prompt) int {
	history := s.versions[p.ID]
	number := 1
	if len(history) > 0 {
		number = history[len(history)-1].VersionNumber + 1
	}

	v := &models.PromptVersion{
		PromptID:         p.ID,
		VersionNumber:    number,
		Title:            p.Title,
		Content:          p.Content,
		Description:      p.Description,
		CollectionID:     cloneRef(p.CollectionID),
		Tags:             append([]string(nil), p.Tags...),
		UpdatedAt:        p.UpdatedAt,
		VersionCreatedAt: s.timestamp(),
	}
	s.versions[p.ID] = append(history, v)
	p.LatestVersion = number

	s.pruneLocked(p.ID)
	return number
}

// pruneLocked drops the oldest-numbered versions until the retained count
// equals the cap. Pruned numbers are never reused; prompt metadata is not
// rolled back. Caller must hold the write lock.
func (s *Store) pruneLocked(promptID string) {
	limit, bounded := s.cap.Limit()
	if !bounded {
		return
	}
	history := s.versions[promptID]
	if len(history) <= limit {
		return
	}
	removed := len(history) - limit
	kept := make([]*models.PromptVersion, limit)
	copy(kept, history[removed:])
	s.versions[promptID] = kept

	// A wrong count here means the retention invariant is lost, not bad
	// input. Fail loudly.
	if len(kept) != limit {
		panic(fmt.Sprintf("store: pruning left %d versions for prompt %s, want %d", len(kept), promptID, limit))
	}
	if s.pruneFunc != nil {
		s.pruneFunc(promptID, removed)
	}
}

// ListVersions returns one page of a prompt's history plus the total number
// of retained versions. Order is OrderDesc (newest first) or OrderAsc; limit
// <= 0 means no page bound, and an out-of-range offset yields an empty page.
func (s *Store) ListVersions(promptID, order string, limit, offset int) ([]*models.PromptVersion, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.prompts[promptID]; !ok {
		return nil, 0, ErrPromptNotFound
	}
	history := s.versions[promptID]
	total := len(history)

	ordered := make([]*models.PromptVersion, total)
	if order == OrderAsc {
		copy(ordered, history)
	} else {
		for i, v := range history {
			ordered[total-1-i] = v
		}
	}

	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []*models.PromptVersion{}, total, nil
	}
	page := ordered[offset:]
	if limit > 0 && limit < len(page) {
		page = page[:limit]
	}

	out := make([]*models.PromptVersion, len(page))
	for i, v := range page {
		out[i] = v.Clone()
	}
	return out, total, nil
}

// GetVersion returns one version snapshot. A pruned version number reports
// ErrVersionNotFound just like one that was never assigned.
func (s *Store) GetVersion(promptID string, number int) (*models.PromptVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.prompts[promptID]; !ok {
		return nil, ErrPromptNotFound
	}
	v := s.findVersionLocked(promptID, number)
	if v == nil {
		return nil, ErrVersionNotFound
	}
	return v.Clone(), nil
}

// Revert restores a prompt's content fields (title, content, description,
// tags) from a historical snapshot and records the result as a new version at
// the top of history; intervening versions are never deleted or rewound. The
// current collection association is kept, since the snapshot's collection may
// no longer exist. Reverting to the already-current version still appends.
func (s *Store) Revert(promptID string, number int) (*models.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prompts[promptID]
	if !ok {
		return nil, ErrPromptNotFound
	}
	v := s.findVersionLocked(promptID, number)
	if v == nil {
		return nil, ErrVersionNotFound
	}

	p.Title = v.Title
	p.Content = v.Content
	p.Description = v.Description
	p.Tags = append([]string(nil), v.Tags...)
	p.UpdatedAt = s.timestamp()
	s.recordVersionLocked(p)
	return p.Clone(), nil
}

// findVersionLocked locates a version by number. History is ascending and
// gapless until pruning, so the candidate position is derived from the first
// retained number. Caller must hold a lock.
func (s *Store) findVersionLocked(promptID string, number int) *models.PromptVersion {
	history := s.versions[promptID]
	if len(history) == 0 {
		return nil
	}
	first := history[0].VersionNumber
	idx := number - first
	if idx < 0 || idx >= len(history) {
		return nil
	}
	return history[idx]
}
