// Package models contains domain models for promptlab.
package models

import "time"

// Prompt is the current state of a stored prompt template.
type Prompt struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Description   string    `json:"description,omitempty"`
	CollectionID  *string   `json:"collection_id"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	LatestVersion int       `json:"latest_version_number"`
}

// Clone returns a deep copy so callers can never alias store-owned state.
func (p *Prompt) Clone() *Prompt {
	cp := *p
	if p.CollectionID != nil {
		id := *p.CollectionID
		cp.CollectionID = &id
	}
	cp.Tags = append([]string(nil), p.Tags...)
	return &cp
}

// PromptDraft carries the caller-supplied fields for a create or full replace.
// Tags are raw input; the store normalizes and validates them before commit.
type PromptDraft struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Description  string   `json:"description"`
	CollectionID *string  `json:"collection_id"`
	Tags         []string `json:"tags"`
}

// PromptPatch carries a partial update. Absent fields leave the prior value
// untouched. CollectionID distinguishes "absent" from "explicitly null":
// present-and-null clears the association. A nil Tags slice leaves tags
// untouched, while a present empty list replaces them with empty.
type PromptPatch struct {
	Title        *string           `json:"title"`
	Content      *string           `json:"content"`
	Description  *string           `json:"description"`
	CollectionID Optional[*string] `json:"collection_id"`
	Tags         []string          `json:"tags"`
}
