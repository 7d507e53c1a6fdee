// Package store implements the in-memory entity store and version history
// ledger for prompts and collections.
//
// One RWMutex guards the entity maps and the ledger together: a mutation and
// its version append form a single atomic unit, so no reader can observe a
// prompt whose content advanced without the matching version, or a partially
// pruned history. Reads take the shared lock and return deep copies.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thebtf/promptlab/internal/tags"
	"github.com/thebtf/promptlab/pkg/models"
)

// PruneFunc is a callback invoked after pruning removes version entries.
// Receives the prompt id and the number of entries removed. Called while the
// write lock is held, so implementations must not call back into the store.
type PruneFunc func(promptID string, removed int)

// Options configures a Store. Zero values select defaults: unlimited version
// retention, standard tag limits, UUIDv4 ids and a UTC wall clock.
type Options struct {
	Cap       VersionCap
	TagLimits tags.Limits
	NewID     func() string
	Now       func() time.Time
}

// Store owns the live prompt/collection maps and the per-prompt version
// ledger. Configuration is read once at construction and immutable for the
// store's lifetime.
type Store struct {
	mu          sync.RWMutex
	prompts     map[string]*models.Prompt
	collections map[string]*models.Collection
	versions    map[string][]*models.PromptVersion // ascending by version number

	cap       VersionCap
	tagLimits tags.Limits
	newID     func() string
	now       func() time.Time
	lastStamp time.Time
	pruneFunc PruneFunc
}

// New creates an empty store.
func New(opts Options) *Store {
	lim := opts.TagLimits
	if lim.MaxTags <= 0 {
		lim.MaxTags = tags.DefaultMaxTags
	}
	if lim.MaxTagLength <= 0 {
		lim.MaxTagLength = tags.DefaultMaxTagLength
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	now := opts.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Store{
		prompts:     make(map[string]*models.Prompt),
		collections: make(map[string]*models.Collection),
		versions:    make(map[string][]*models.PromptVersion),
		cap:         opts.Cap,
		tagLimits:   lim,
		newID:       newID,
		now:         now,
	}
}

// SetPruneFunc sets the callback invoked when version entries are pruned.
// Must be called before the store is shared between goroutines.
func (s *Store) SetPruneFunc(fn PruneFunc) {
	s.pruneFunc = fn
}

// Cap returns the configured version retention cap.
func (s *Store) Cap() VersionCap { return s.cap }

// TagLimits returns the configured tag limits.
func (s *Store) TagLimits() tags.Limits { return s.tagLimits }

// Counts returns the number of live prompts, collections and retained
// versions. Used by the metrics gauges.
func (s *Store) Counts() (prompts, collections, versions int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, vs := range s.versions {
		versions += len(vs)
	}
	return len(s.prompts), len(s.collections), versions
}

// timestamp returns the current time, clamped so stamps never move backward
// even if the wall clock does. Caller must hold the write lock.
func (s *Store) timestamp() time.Time {
	t := s.now()
	if t.Before(s.lastStamp) {
		t = s.lastStamp
	}
	s.lastStamp = t
	return t
}
