package models

import "time"

// PromptVersion is an immutable snapshot of a prompt at one point in time.
// Once recorded it is never mutated, only pruned. CollectionID is the value
// at snapshot time and may no longer resolve to a live collection.
type PromptVersion struct {
	PromptID         string    `json:"prompt_id"`
	VersionNumber    int       `json:"version_number"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	Description      string    `json:"description,omitempty"`
	CollectionID     *string   `json:"collection_id"`
	Tags             []string  `json:"tags"`
	UpdatedAt        time.Time `json:"updated_at"`
	VersionCreatedAt time.Time `json:"version_created_at"`
	UpdatedBy        string    `json:"updated_by,omitempty"` // reserved for future auth
}

// Clone returns a deep copy of the version snapshot.
func (v *PromptVersion) Clone() *PromptVersion {
	cp := *v
	if v.CollectionID != nil {
		id := *v.CollectionID
		cp.CollectionID = &id
	}
	cp.Tags = append([]string(nil), v.Tags...)
	return &cp
}
