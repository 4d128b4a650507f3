package matching

import (
	"errors"
	"testing"

	"github.com/pageza/pantry-match/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilterConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewFilterConfig(nil, nil, "", "")
		require.NoError(t, err)
		assert.Empty(t, cfg.DietaryFilters)
		assert.Nil(t, cfg.MaxTime)
		assert.Nil(t, cfg.Difficulty)
		assert.Equal(t, SortByMatch, cfg.SortBy)
	})

	t.Run("valid input", func(t *testing.T) {
		cfg, err := NewFilterConfig([]string{"Vegan", "gluten-free", "vegan"}, intPtr(30), "Medium", "time")
		require.NoError(t, err)
		assert.Equal(t, []model.DietaryTag{model.DietVegan, model.DietGlutenFree}, cfg.DietaryFilters)
		require.NotNil(t, cfg.MaxTime)
		assert.Equal(t, 30, *cfg.MaxTime)
		require.NotNil(t, cfg.Difficulty)
		assert.Equal(t, model.DifficultyMedium, *cfg.Difficulty)
		assert.Equal(t, SortByTime, cfg.SortBy)
	})

	t.Run("max time is copied", func(t *testing.T) {
		limit := 20
		cfg, err := NewFilterConfig(nil, &limit, "", "")
		require.NoError(t, err)
		limit = 5
		assert.Equal(t, 20, *cfg.MaxTime)
	})

	rejected := []struct {
		name       string
		dietary    []string
		maxTime    *int
		difficulty string
		sortBy     string
		field      string
	}{
		{"unknown diet", []string{"keto"}, nil, "", "", "dietaryFilters"},
		{"negative max time", nil, intPtr(-5), "", "", "maxTime"},
		{"zero max time", nil, intPtr(0), "", "", "maxTime"},
		{"unknown difficulty", nil, nil, "extreme", "", "difficulty"},
		{"unknown sort", nil, nil, "", "rating", "sortBy"},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFilterConfig(tt.dietary, tt.maxTime, tt.difficulty, tt.sortBy)
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestFilterConfig_Accepts(t *testing.T) {
	recipe := model.Recipe{
		ID:          7,
		CookingTime: 30,
		Difficulty:  model.DifficultyMedium,
		Dietary:     model.StringArray{"vegetarian"},
	}

	assert.True(t, FilterConfig{}.Accepts(recipe))
	assert.True(t, mustFilters(t, []string{"vegetarian"}, intPtr(30), "medium", "").Accepts(recipe))
	assert.False(t, mustFilters(t, []string{"vegetarian", "vegan"}, nil, "", "").Accepts(recipe))
	assert.False(t, mustFilters(t, nil, intPtr(29), "", "").Accepts(recipe))
	assert.False(t, mustFilters(t, nil, nil, "easy", "").Accepts(recipe))
}
