package matching

import (
	"fmt"
	"strings"

	"github.com/pageza/pantry-match/backend/internal/model"
)

// SortOption selects the ordering of ranked results
type SortOption string

const (
	SortByMatch      SortOption = "match"
	SortByTime       SortOption = "time"
	SortByDifficulty SortOption = "difficulty"
)

// ParseSortOption accepts "match", "time" or "difficulty"; empty means match.
func ParseSortOption(s string) (SortOption, error) {
	switch SortOption(s) {
	case "":
		return SortByMatch, nil
	case SortByMatch, SortByTime, SortByDifficulty:
		return SortOption(s), nil
	default:
		return "", &ConfigError{Field: "sortBy", Message: fmt.Sprintf("unknown sort option %q", s)}
	}
}

// ConfigError reports a rejected filter or sort setting
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FilterConfig holds validated search filters. Build it with NewFilterConfig.
type FilterConfig struct {
	DietaryFilters []model.DietaryTag
	MaxTime        *int
	Difficulty     *model.Difficulty
	SortBy         SortOption
}

// NewFilterConfig validates raw filter input. Unknown dietary tags,
// non-positive max times, unknown difficulties and unknown sort options are
// rejected here so that ranking itself never fails.
func NewFilterConfig(dietary []string, maxTime *int, difficulty string, sortBy string) (FilterConfig, error) {
	var cfg FilterConfig

	seen := make(map[model.DietaryTag]struct{}, len(dietary))
	for _, raw := range dietary {
		tag := model.DietaryTag(strings.ToLower(strings.TrimSpace(raw)))
		if !tag.Filterable() {
			return FilterConfig{}, &ConfigError{Field: "dietaryFilters", Message: fmt.Sprintf("unknown dietary filter %q", raw)}
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		cfg.DietaryFilters = append(cfg.DietaryFilters, tag)
	}

	if maxTime != nil {
		if *maxTime <= 0 {
			return FilterConfig{}, &ConfigError{Field: "maxTime", Message: fmt.Sprintf("must be positive, got %d", *maxTime)}
		}
		v := *maxTime
		cfg.MaxTime = &v
	}

	if difficulty != "" {
		d, err := model.ParseDifficulty(strings.ToLower(difficulty))
		if err != nil {
			return FilterConfig{}, &ConfigError{Field: "difficulty", Message: err.Error()}
		}
		cfg.Difficulty = &d
	}

	sort, err := ParseSortOption(sortBy)
	if err != nil {
		return FilterConfig{}, err
	}
	cfg.SortBy = sort

	return cfg, nil
}

// Accepts reports whether a recipe passes every active filter.
func (f FilterConfig) Accepts(r model.Recipe) bool {
	for _, tag := range f.DietaryFilters {
		if !r.HasDiet(tag) {
			return false
		}
	}
	if f.MaxTime != nil && r.CookingTime > *f.MaxTime {
		return false
	}
	if f.Difficulty != nil && r.Difficulty != *f.Difficulty {
		return false
	}
	return true
}
