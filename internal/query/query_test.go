package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebtf/promptlab/pkg/models"
)

var queryBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testPrompt(id, title string, collectionID *string, updatedOffset int, promptTags ...string) *models.Prompt {
	return &models.Prompt{
		ID:           id,
		Title:        title,
		Content:      "content of " + title,
		Description:  "description of " + title,
		CollectionID: collectionID,
		Tags:         promptTags,
		UpdatedAt:    queryBase.Add(time.Duration(updatedOffset) * time.Second),
	}
}

func ids(prompts []*models.Prompt) []string {
	out := make([]string, len(prompts))
	for i, p := range prompts {
		out[i] = p.ID
	}
	return out
}

func TestRun_NoFiltersSortsNewestFirst(t *testing.T) {
	prompts := []*models.Prompt{
		testPrompt("a", "old", nil, 1),
		testPrompt("b", "new", nil, 3),
		testPrompt("c", "mid", nil, 2),
	}

	got := Run(prompts, Params{})
	assert.Equal(t, []string{"b", "c", "a"}, ids(got))
}

func TestRun_TiesBreakByIDAscending(t *testing.T) {
	prompts := []*models.Prompt{
		testPrompt("z", "one", nil, 1),
		testPrompt("a", "two", nil, 1),
		testPrompt("m", "three", nil, 1),
	}

	got := Run(prompts, Params{})
	assert.Equal(t, []string{"a", "m", "z"}, ids(got))
}

func TestRun_CollectionFilter(t *testing.T) {
	c1 := "c1"
	c2 := "c2"
	prompts := []*models.Prompt{
		testPrompt("a", "in c1", &c1, 1),
		testPrompt("b", "in c2", &c2, 2),
		testPrompt("c", "unassigned", nil, 3),
	}

	got := Run(prompts, Params{Collection: "c1"})
	assert.Equal(t, []string{"a"}, ids(got))

	// Null and a concrete id are distinct targets.
	got = Run(prompts, Params{Collection: UnassignedCollection})
	assert.Equal(t, []string{"c"}, ids(got))

	got = Run(prompts, Params{Collection: "missing"})
	assert.Empty(t, got)
}

func TestRun_TagFilterIsSupersetMatch(t *testing.T) {
	prompts := []*models.Prompt{
		testPrompt("a", "both", nil, 1, "nlp", "demo"),
		testPrompt("b", "one", nil, 2, "nlp"),
		testPrompt("c", "neither", nil, 3),
	}

	got := Run(prompts, Params{Tags: []string{"nlp", "demo"}})
	assert.Equal(t, []string{"a"}, ids(got), "all requested tags must be present")

	// Requested tags are normalized like stored ones.
	got = Run(prompts, Params{Tags: []string{" NLP "}})
	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestRun_SearchMatchesTitleDescriptionContent(t *testing.T) {
	byTitle := testPrompt("a", "Summarize article", nil, 1)
	byDescription := testPrompt("b", "other", nil, 2)
	byDescription.Description = "a summarization helper"
	byContent := testPrompt("c", "other", nil, 3)
	byContent.Content = "Please SUMMARize the following"
	miss := testPrompt("d", "translate", nil, 4)
	miss.Content = "translate the text"
	miss.Description = "translation"

	got := Run([]*models.Prompt{byTitle, byDescription, byContent, miss}, Params{Search: "summar"})
	assert.Equal(t, []string{"c", "b", "a"}, ids(got))
}

func TestRun_CombinedPipeline(t *testing.T) {
	c1 := "c1"
	c2 := "c2"
	match := testPrompt("a", "Summarize paper", &c1, 1, "nlp", "demo")
	wrongCollection := testPrompt("b", "Summarize paper", &c2, 2, "nlp", "demo")
	missingTag := testPrompt("c", "Summarize paper", &c1, 3, "nlp")
	noSearchHit := testPrompt("d", "Translate paper", &c1, 4, "nlp", "demo")
	noSearchHit.Content = "translate"
	noSearchHit.Description = "translation"

	got := Run([]*models.Prompt{match, wrongCollection, missingTag, noSearchHit}, Params{
		Collection: "c1",
		Tags:       []string{"nlp", "demo"},
		Search:     "summar",
	})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	prompts := []*models.Prompt{
		testPrompt("a", "one", nil, 1),
		testPrompt("b", "two", nil, 2),
	}

	Run(prompts, Params{Search: "one"})

	require.Equal(t, "a", prompts[0].ID)
	require.Equal(t, "b", prompts[1].ID)
}

func TestVariables(t *testing.T) {
	assert.Equal(t, []string{"name", "platform"}, Variables("Hello {{name}}, welcome to {{platform}}!"))
	assert.Empty(t, Variables("no variables here"))
	assert.Equal(t, []string{"x", "x"}, Variables("{{x}} and {{x}} again"))
	assert.Empty(t, Variables("{{not valid}} {{}}"))
}
