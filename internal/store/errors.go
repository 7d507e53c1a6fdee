package store

import "errors"

// Sentinel errors returned by store operations. Expected failure conditions
// are always reported as values, never panics.
var (
	// ErrPromptNotFound means the prompt id does not resolve to a live prompt.
	ErrPromptNotFound = errors.New("prompt not found")

	// ErrCollectionNotFound means the collection id does not resolve.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrVersionNotFound means the version number does not exist for the
	// prompt, either because it was never assigned or because it was pruned.
	ErrVersionNotFound = errors.New("version not found")

	// ErrInvalidCollection means a supplied collection_id reference does not
	// resolve to a live collection at write time.
	ErrInvalidCollection = errors.New("collection does not exist")
)
