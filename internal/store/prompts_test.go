package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebtf/promptlab/internal/tags"
	"github.com/thebtf/promptlab/pkg/models"
)

func TestCreatePrompt(t *testing.T) {
	s := newTestStore(t, Unlimited())

	p, err := s.CreatePrompt(models.PromptDraft{
		Title:   "Summarize",
		Content: "Summarize the text in 3 bullets.",
		Tags:    []string{" NLP ", "nlp", "Demo"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, []string{"nlp", "demo"}, p.Tags, "tags are normalized on write")
	assert.Equal(t, 1, p.LatestVersion)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	assert.Nil(t, p.CollectionID)

	v, err := s.GetVersion(p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, p.Content, v.Content)
}

func TestCreatePrompt_InvalidCollectionReference(t *testing.T) {
	s := newTestStore(t, Unlimited())

	missing := "nope"
	_, err := s.CreatePrompt(models.PromptDraft{
		Title:        "a",
		Content:      "b",
		CollectionID: &missing,
	})
	require.ErrorIs(t, err, ErrInvalidCollection)

	// Validate-then-commit: nothing was written.
	prompts, _, versions := s.Counts()
	assert.Zero(t, prompts)
	assert.Zero(t, versions)
}

func TestCreatePrompt_TagConstraintViolation(t *testing.T) {
	s := New(Options{TagLimits: tags.Limits{MaxTags: 2, MaxTagLength: 5}})

	_, err := s.CreatePrompt(models.PromptDraft{
		Title:   "a",
		Content: "b",
		Tags:    []string{"one", "two", "three"},
	})
	require.ErrorIs(t, err, tags.ErrConstraint)

	_, err = s.CreatePrompt(models.PromptDraft{
		Title:   "a",
		Content: "b",
		Tags:    []string{strings.Repeat("x", 6)},
	})
	require.ErrorIs(t, err, tags.ErrConstraint)

	prompts, _, _ := s.Counts()
	assert.Zero(t, prompts, "failed validation must not partially apply")
}

func TestReplacePrompt(t *testing.T) {
	s := newTestStore(t, Unlimited())

	c := createTestCollection(t, s, "col")
	p := createTestPrompt(t, s, "orig", &c.ID, "keep")

	updated, err := s.ReplacePrompt(p.ID, models.PromptDraft{
		Title:   "replaced",
		Content: "new content",
	})
	require.NoError(t, err)

	assert.Equal(t, "replaced", updated.Title)
	assert.Empty(t, updated.Description)
	assert.Nil(t, updated.CollectionID, "full replace with no collection clears the association")
	assert.Empty(t, updated.Tags)
	assert.Equal(t, 2, updated.LatestVersion)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(p.UpdatedAt))
}

func TestReplacePrompt_NotFound(t *testing.T) {
	s := newTestStore(t, Unlimited())

	_, err := s.ReplacePrompt("missing", models.PromptDraft{Title: "a", Content: "b"})
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestPatchPrompt_OmittedFieldsUntouched(t *testing.T) {
	s := newTestStore(t, Unlimited())

	c := createTestCollection(t, s, "col")
	p := createTestPrompt(t, s, "orig", &c.ID, "nlp")

	newTitle := "patched"
	updated, err := s.PatchPrompt(p.ID, models.PromptPatch{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "patched", updated.Title)
	assert.Equal(t, p.Content, updated.Content)
	assert.Equal(t, p.Description, updated.Description)
	require.NotNil(t, updated.CollectionID)
	assert.Equal(t, c.ID, *updated.CollectionID)
	assert.Equal(t, []string{"nlp"}, updated.Tags)
	assert.Equal(t, 2, updated.LatestVersion)
}

func TestPatchPrompt_ExplicitNullClearsCollection(t *testing.T) {
	s := newTestStore(t, Unlimited())

	c := createTestCollection(t, s, "col")
	p := createTestPrompt(t, s, "orig", &c.ID)

	updated, err := s.PatchPrompt(p.ID, models.PromptPatch{
		CollectionID: models.Optional[*string]{Set: true, Value: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.CollectionID)
}

func TestPatchPrompt_EmptyTagListReplacesTags(t *testing.T) {
	s := newTestStore(t, Unlimited())

	p := createTestPrompt(t, s, "orig", nil, "nlp", "demo")

	updated, err := s.PatchPrompt(p.ID, models.PromptPatch{Tags: []string{}})
	require.NoError(t, err)
	assert.Empty(t, updated.Tags, "present empty list replaces tags with empty")

	// A nil slice leaves tags untouched.
	again, err := s.PatchPrompt(p.ID, models.PromptPatch{})
	require.NoError(t, err)
	assert.Empty(t, again.Tags)
}

func TestPatchPrompt_InvalidCollectionLeavesStateUntouched(t *testing.T) {
	s := newTestStore(t, Unlimited())

	p := createTestPrompt(t, s, "orig", nil)

	missing := "missing"
	newTitle := "should not apply"
	_, err := s.PatchPrompt(p.ID, models.PromptPatch{
		Title:        &newTitle,
		CollectionID: models.Optional[*string]{Set: true, Value: &missing},
	})
	require.ErrorIs(t, err, ErrInvalidCollection)

	current, err := s.GetPrompt(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "orig", current.Title)
	assert.Equal(t, 1, current.LatestVersion)
}

func TestDeletePrompt_CascadesHistory(t *testing.T) {
	s := newTestStore(t, Unlimited())

	p := createTestPrompt(t, s, "orig", nil)
	_, err := s.ReplacePrompt(p.ID, models.PromptDraft{Title: "v2", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, s.DeletePrompt(p.ID))

	_, err = s.GetPrompt(p.ID)
	assert.ErrorIs(t, err, ErrPromptNotFound)

	// History is gone with the prompt: not an empty list, a missing prompt.
	_, _, err = s.ListVersions(p.ID, OrderDesc, 0, 0)
	assert.ErrorIs(t, err, ErrPromptNotFound)

	_, _, versions := s.Counts()
	assert.Zero(t, versions, "no orphaned versions may persist")
}

func TestDeletePrompt_NotFound(t *testing.T) {
	s := newTestStore(t, Unlimited())

	assert.ErrorIs(t, s.DeletePrompt("missing"), ErrPromptNotFound)
}
