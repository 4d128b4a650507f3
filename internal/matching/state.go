package matching

import (
	"slices"
	"strings"
)

// SearchState is the pantry and filter input of one search. Values are
// immutable: every With* method returns a new state and leaves the receiver
// untouched.
type SearchState struct {
	pantry     []string
	dietary    []string
	maxTime    *int
	difficulty string
	sortBy     string
}

// NewSearchState returns an empty state sorted by best match.
func NewSearchState() SearchState {
	return SearchState{sortBy: string(SortByMatch)}
}

// Pantry returns a copy of the pantry entries.
func (s SearchState) Pantry() []string {
	return slices.Clone(s.pantry)
}

// Dietary returns a copy of the selected dietary filters.
func (s SearchState) Dietary() []string {
	return slices.Clone(s.dietary)
}

// CanSearch is false while the pantry is empty.
func (s SearchState) CanSearch() bool {
	return len(s.pantry) > 0
}

// WithIngredient appends a trimmed ingredient unless it is blank or already present.
func (s SearchState) WithIngredient(name string) SearchState {
	name = strings.TrimSpace(name)
	if name == "" || slices.Contains(s.pantry, name) {
		return s
	}
	next := s.clone()
	next.pantry = append(next.pantry, name)
	return next
}

// WithIngredients applies WithIngredient for every name in order.
func (s SearchState) WithIngredients(names []string) SearchState {
	next := s
	for _, n := range names {
		next = next.WithIngredient(n)
	}
	return next
}

// WithDetected merges ingredients reported by image detection.
func (s SearchState) WithDetected(detected []string) SearchState {
	return s.WithIngredients(detected)
}

// WithoutIngredient removes an ingredient from the pantry.
func (s SearchState) WithoutIngredient(name string) SearchState {
	idx := slices.Index(s.pantry, name)
	if idx < 0 {
		return s
	}
	next := s.clone()
	next.pantry = slices.Delete(next.pantry, idx, idx+1)
	return next
}

// ToggleDietary adds the dietary filter if absent and removes it otherwise.
func (s SearchState) ToggleDietary(tag string) SearchState {
	next := s.clone()
	if idx := slices.Index(next.dietary, tag); idx >= 0 {
		next.dietary = slices.Delete(next.dietary, idx, idx+1)
	} else {
		next.dietary = append(next.dietary, tag)
	}
	return next
}

// WithMaxTime sets the cooking time limit in minutes; nil clears it.
func (s SearchState) WithMaxTime(minutes *int) SearchState {
	next := s.clone()
	next.maxTime = nil
	if minutes != nil {
		v := *minutes
		next.maxTime = &v
	}
	return next
}

// WithDifficulty sets the difficulty filter; "" clears it.
func (s SearchState) WithDifficulty(d string) SearchState {
	next := s.clone()
	next.difficulty = d
	return next
}

// WithSortBy sets the result ordering.
func (s SearchState) WithSortBy(by string) SearchState {
	next := s.clone()
	next.sortBy = by
	return next
}

// Filters validates the filter settings into a FilterConfig.
func (s SearchState) Filters() (FilterConfig, error) {
	return NewFilterConfig(s.dietary, s.maxTime, s.difficulty, s.sortBy)
}

func (s SearchState) clone() SearchState {
	next := s
	next.pantry = slices.Clone(s.pantry)
	next.dietary = slices.Clone(s.dietary)
	if s.maxTime != nil {
		v := *s.maxTime
		next.maxTime = &v
	}
	return next
}
