package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantry-match/backend/internal/model"
)

func sampleRecipes() []model.Recipe {
	return []model.Recipe{
		{ID: 7, Title: "Tomato Soup", Ingredients: model.StringArray{"Tomato", "onion", "vegetable broth"}, CookingTime: 30, Difficulty: "Easy", Dietary: model.StringArray{"Vegan"}, Servings: 4},
		{ID: 3, Title: "Onion Tart", Ingredients: model.StringArray{"onion", "puff pastry", "gruyere cheese"}, CookingTime: 50, Difficulty: model.DifficultyMedium, Servings: 6},
		{ID: 9, Title: "Toast", Ingredients: nil, CookingTime: 3, Difficulty: model.DifficultyEasy, Servings: 1},
	}
}

func TestNew(t *testing.T) {
	c, err := New(sampleRecipes())
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())

	all := c.All()
	assert.Equal(t, []int{7, 3, 9}, []int{all[0].ID, all[1].ID, all[2].ID}, "catalog order is kept")
	assert.Equal(t, model.DifficultyEasy, all[0].Difficulty)
	assert.Equal(t, model.StringArray{"vegan"}, all[0].Dietary)
	assert.NotNil(t, all[2].Ingredients)
}

func TestNewRejectsInvalidRecipes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]model.Recipe) []model.Recipe
		want   string
	}{
		{"duplicate id", func(r []model.Recipe) []model.Recipe { r[1].ID = 7; return r }, "duplicate id"},
		{"unknown difficulty", func(r []model.Recipe) []model.Recipe { r[0].Difficulty = "extreme"; return r }, "unknown difficulty"},
		{"zero cooking time", func(r []model.Recipe) []model.Recipe { r[0].CookingTime = 0; return r }, "cookingTime"},
		{"negative servings", func(r []model.Recipe) []model.Recipe { r[2].Servings = -1; return r }, "servings"},
		{"blank title", func(r []model.Recipe) []model.Recipe { r[1].Title = " "; return r }, "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(sampleRecipes()))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	in := sampleRecipes()
	c, err := New(in)
	require.NoError(t, err)

	in[0].Ingredients[0] = "changed"
	got, err := c.Get(7)
	require.NoError(t, err)
	assert.Equal(t, "Tomato", got.Ingredients[0])
}

func TestGet(t *testing.T) {
	c, err := New(sampleRecipes())
	require.NoError(t, err)

	r, err := c.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Onion Tart", r.Title)

	_, err = c.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIngredients(t *testing.T) {
	c, err := New(sampleRecipes())
	require.NoError(t, err)

	assert.Equal(t, []string{"gruyere cheese", "onion", "puff pastry", "tomato", "vegetable broth"}, c.Ingredients())
}

func TestSuggest(t *testing.T) {
	c, err := New(sampleRecipes())
	require.NoError(t, err)

	tests := []struct {
		name    string
		query   string
		exclude []string
		limit   int
		want    []string
	}{
		{"substring match", "on", nil, DefaultSuggestLimit, []string{"onion"}},
		{"case insensitive", "TOM", nil, DefaultSuggestLimit, []string{"tomato"}},
		{"excluded entries are skipped", "o", []string{"Onion"}, DefaultSuggestLimit, []string{"tomato", "vegetable broth"}},
		{"limit applies", "o", nil, 2, []string{"onion", "tomato"}},
		{"blank query", "  ", nil, DefaultSuggestLimit, []string{}},
		{"no match", "saffron", nil, DefaultSuggestLimit, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Suggest(tt.query, tt.exclude, tt.limit))
		})
	}
}
