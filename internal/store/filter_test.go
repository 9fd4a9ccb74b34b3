package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jmallek/promptstash/internal/model"
)

func filterFixture() []model.Prompt {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []model.Prompt{
		{
			ID: "p1", Title: "Code Review Checklist", Content: "Review the diff below",
			Category: "Development", Tags: []string{"code", "review"},
			UpdatedAt: base.Add(1 * time.Hour), UsageCount: 5, IsFavorite: true,
		},
		{
			ID: "p2", Title: "Blog Outline", Content: "Outline a blog post about Go",
			Category: "Writing", Tags: []string{"blog"},
			UpdatedAt: base.Add(3 * time.Hour), UsageCount: 12,
		},
		{
			ID: "p3", Title: "Data Analysis", Content: "Analyze this CSV",
			Category: "Analysis", Tags: []string{"code", "data"},
			UpdatedAt: base.Add(2 * time.Hour), UsageCount: 8, IsFavorite: true,
		},
	}
}

func ids(prompts []model.Prompt) []string {
	out := make([]string, len(prompts))
	for i, p := range prompts {
		out[i] = p.ID
	}
	return out
}

func TestFilterPrompts_Query(t *testing.T) {
	prompts := filterFixture()

	// Title match, case-insensitive.
	got := FilterPrompts(prompts, Filter{Query: "BLOG"})
	require.Equal(t, []string{"p2"}, ids(got))

	// Content match.
	got = FilterPrompts(prompts, Filter{Query: "csv"})
	require.Equal(t, []string{"p3"}, ids(got))

	// Tag match.
	got = FilterPrompts(prompts, Filter{Query: "review"})
	require.Equal(t, []string{"p1"}, ids(got))

	// Empty query matches everything.
	got = FilterPrompts(prompts, Filter{Query: "  "})
	require.Len(t, got, 3)
}

func TestFilterPrompts_CategoryAndTags(t *testing.T) {
	prompts := filterFixture()

	got := FilterPrompts(prompts, Filter{Category: "Development"})
	require.Equal(t, []string{"p1"}, ids(got))

	// Tag selection is conjunctive.
	got = FilterPrompts(prompts, Filter{Tags: []string{"code"}})
	require.Equal(t, []string{"p1", "p3"}, ids(got))
	got = FilterPrompts(prompts, Filter{Tags: []string{"code", "data"}})
	require.Equal(t, []string{"p3"}, ids(got))

	// All steps together.
	got = FilterPrompts(prompts, Filter{Query: "analyze", Category: "Analysis", Tags: []string{"data"}})
	require.Equal(t, []string{"p3"}, ids(got))
	got = FilterPrompts(prompts, Filter{Query: "analyze", Category: "Writing"})
	require.Empty(t, got)
}

func TestFilterPrompts_SortModes(t *testing.T) {
	prompts := filterFixture()

	got := FilterPrompts(prompts, Filter{Sort: SortRecent})
	require.Equal(t, []string{"p2", "p3", "p1"}, ids(got))

	got = FilterPrompts(prompts, Filter{Sort: SortPopular})
	require.Equal(t, []string{"p2", "p3", "p1"}, ids(got))

	// Favorites narrows instead of ordering.
	got = FilterPrompts(prompts, Filter{Sort: SortFavorites})
	require.Equal(t, []string{"p1", "p3"}, ids(got))
}

func TestFilterPrompts_DoesNotMutateInput(t *testing.T) {
	prompts := filterFixture()
	FilterPrompts(prompts, Filter{Sort: SortRecent})
	require.Equal(t, []string{"p1", "p2", "p3"}, ids(prompts))
}

func TestStoreFilterState(t *testing.T) {
	s, _ := newTestPromptStore(t)
	for _, p := range filterFixture() {
		_, err := s.AddPrompt(PromptInput{
			Title: p.Title, Content: p.Content, Category: p.Category, Tags: p.Tags,
		})
		require.NoError(t, err)
	}

	s.SetSearchQuery("blog")
	got := s.FilteredPrompts(SortRecent)
	require.Len(t, got, 1)
	require.Equal(t, "Blog Outline", got[0].Title)

	s.SetSearchQuery("")
	s.SetSelectedCategory("Analysis")
	s.ToggleTag("data")
	got = s.FilteredPrompts(SortRecent)
	require.Len(t, got, 1)
	require.Equal(t, "Data Analysis", got[0].Title)

	// Toggling again deselects the tag.
	s.ToggleTag("data")
	require.Empty(t, s.ActiveFilter(SortRecent).Tags)

	s.ClearFilters()
	require.Len(t, s.FilteredPrompts(SortRecent), 3)
}
