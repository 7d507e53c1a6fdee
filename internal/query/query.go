// Package query implements the read-only filter pipeline over prompt
// snapshots: collection filter, tag superset filter, substring search, then
// deterministic ordering. It never mutates the prompts it is given.
package query

import (
	"sort"
	"strings"

	"github.com/thebtf/promptlab/internal/tags"
	"github.com/thebtf/promptlab/pkg/models"
)

// UnassignedCollection is the collection filter value selecting prompts with
// no collection. Null and a concrete id are distinct filter targets.
const UnassignedCollection = "none"

// Params are the optional filters. Zero values disable a stage.
type Params struct {
	// Collection keeps prompts whose collection_id equals the given id, or
	// prompts without a collection when set to UnassignedCollection.
	Collection string
	// Tags keeps prompts whose tag set contains every requested tag. The
	// requested set is normalized exactly like stored tags.
	Tags []string
	// Search keeps prompts whose title, description or content contains the
	// term, case-insensitively.
	Search string
}

// Run applies the pipeline stages in fixed order and returns the matches
// sorted by updated_at descending, id ascending on ties. Each stage operates
// on the previous stage's output and short-circuits once the set is empty.
func Run(prompts []*models.Prompt, p Params) []*models.Prompt {
	matched := prompts

	if p.Collection != "" {
		matched = filterByCollection(matched, p.Collection)
	}
	if len(p.Tags) > 0 && len(matched) > 0 {
		matched = filterByTags(matched, tags.Normalize(p.Tags))
	}
	if p.Search != "" && len(matched) > 0 {
		matched = filterBySearch(matched, p.Search)
	}

	out := make([]*models.Prompt, len(matched))
	copy(out, matched)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func filterByCollection(prompts []*models.Prompt, target string) []*models.Prompt {
	var out []*models.Prompt
	for _, p := range prompts {
		switch {
		case target == UnassignedCollection:
			if p.CollectionID == nil {
				out = append(out, p)
			}
		case p.CollectionID != nil && *p.CollectionID == target:
			out = append(out, p)
		}
	}
	return out
}

func filterByTags(prompts []*models.Prompt, requested []string) []*models.Prompt {
	if len(requested) == 0 {
		return prompts
	}
	var out []*models.Prompt
	for _, p := range prompts {
		if hasAllTags(p.Tags, requested) {
			out = append(out, p)
		}
	}
	return out
}

func hasAllTags(have, want []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, tag := range have {
		set[tag] = struct{}{}
	}
	for _, tag := range want {
		if _, ok := set[tag]; !ok {
			return false
		}
	}
	return true
}

func filterBySearch(prompts []*models.Prompt, term string) []*models.Prompt {
	needle := strings.ToLower(term)
	var out []*models.Prompt
	for _, p := range prompts {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.Content), needle) {
			out = append(out, p)
		}
	}
	return out
}
