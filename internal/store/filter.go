package store

import (
	"sort"
	"strings"

	"github.com/jmallek/promptstash/internal/model"
)

// SortMode selects the ordering of a filtered prompt listing.
type SortMode string

const (
	// SortRecent orders by updatedAt descending.
	SortRecent SortMode = "recent"
	// SortPopular orders by usageCount descending.
	SortPopular SortMode = "popular"
	// SortFavorites is not an ordering: it narrows the result to
	// favorites and keeps the relative order stable.
	SortFavorites SortMode = "favorites"
)

// Filter is the full query state for a prompt listing.
type Filter struct {
	Query    string
	Category string
	Tags     []string
	Sort     SortMode
}

// FilterPrompts applies the filter pipeline: search, then category, then
// tags. All steps are conjunctive, so the order does not change the
// final set. The sort (or favorites narrowing) is applied last.
// Pure function: the input slice is never mutated.
func FilterPrompts(prompts []model.Prompt, f Filter) []model.Prompt {
	out := make([]model.Prompt, 0, len(prompts))
	query := strings.ToLower(strings.TrimSpace(f.Query))

	for _, p := range prompts {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if !hasAllTags(p.Tags, f.Tags) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		})
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UsageCount > out[j].UsageCount
		})
	case SortFavorites:
		favorites := out[:0]
		for _, p := range out {
			if p.IsFavorite {
				favorites = append(favorites, p)
			}
		}
		out = favorites
	}

	return out
}

// matchesQuery checks the case-insensitive substring match against
// title, content, and tags.
func matchesQuery(p model.Prompt, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Content), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// hasAllTags checks that the prompt carries every selected tag (AND
// semantics).
func hasAllTags(promptTags, selected []string) bool {
	for _, want := range selected {
		if !containsString(promptTags, want) {
			return false
		}
	}
	return true
}

// SetSearchQuery sets the active search query.
func (s *PromptStore) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// SetSelectedCategory sets the active category filter; empty clears it.
func (s *PromptStore) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = category
}

// ToggleTag adds the tag to the active tag filter, or removes it if
// already selected.
func (s *PromptStore) ToggleTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if containsString(s.selectedTags, tag) {
		s.selectedTags = removeString(s.selectedTags, tag)
		return
	}
	s.selectedTags = append(s.selectedTags, tag)
}

// ClearFilters resets search query, category, and tag selection.
func (s *PromptStore) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = ""
	s.selectedCategory = ""
	s.selectedTags = nil
}

// ActiveFilter returns the store's current filter state combined with
// the requested sort mode.
func (s *PromptStore) ActiveFilter(sort SortMode) Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Filter{
		Query:    s.searchQuery,
		Category: s.selectedCategory,
		Tags:     append([]string{}, s.selectedTags...),
		Sort:     sort,
	}
}

// FilteredPrompts lists prompts through the store's active filter state.
func (s *PromptStore) FilteredPrompts(sort SortMode) []model.Prompt {
	s.mu.Lock()
	f := Filter{
		Query:    s.searchQuery,
		Category: s.selectedCategory,
		Tags:     append([]string{}, s.selectedTags...),
		Sort:     sort,
	}
	prompts := clonePrompts(s.prompts)
	s.mu.Unlock()

	return FilterPrompts(prompts, f)
}
