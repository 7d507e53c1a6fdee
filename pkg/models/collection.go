package models

import "time"

// Collection is a named grouping of prompts. Collections are immutable after
// creation except for deletion.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Clone returns a copy of the collection.
func (c *Collection) Clone() *Collection {
	cp := *c
	return &cp
}

// CollectionDraft carries the caller-supplied fields for a create.
type CollectionDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
