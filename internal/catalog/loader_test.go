package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/pantry-match/backend/internal/model"
)

func TestEmbedded(t *testing.T) {
	c, err := Embedded()
	require.NoError(t, err)
	assert.Equal(t, 12, c.Len())

	for _, r := range c.All() {
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.Ingredients, "recipe %d", r.ID)
		assert.True(t, r.Difficulty.Valid(), "recipe %d", r.ID)
	}

	assert.Contains(t, c.Suggest("tom", nil, DefaultSuggestLimit), "tomato")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "recipes.json", `[
			{"id": 1, "title": "Omelette", "ingredients": ["egg", "butter"], "instructions": ["Whisk", "Cook"],
			 "cookingTime": 10, "difficulty": "easy", "dietary": ["vegetarian"], "cuisine": "French", "servings": 1}
		]`)

		c, err := LoadFile(path)
		require.NoError(t, err)
		r, err := c.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "Omelette", r.Title)
		assert.Equal(t, 10, r.CookingTime)
		assert.True(t, r.HasDiet(model.DietVegetarian))
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "recipes.yaml", `
- id: 2
  title: Rice Bowl
  ingredients: [rice, soy sauce]
  cookingTime: 20
  difficulty: medium
  dietary: [vegan]
  servings: 2
`)

		c, err := LoadFile(path)
		require.NoError(t, err)
		r, err := c.Get(2)
		require.NoError(t, err)
		assert.Equal(t, model.StringArray{"rice", "soy sauce"}, r.Ingredients)
		assert.Equal(t, model.DifficultyMedium, r.Difficulty)
	})

	t.Run("unknown json field", func(t *testing.T) {
		path := writeFile(t, "recipes.json", `[{"id": 1, "title": "X", "rating": 5}]`)
		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "recipes.csv", "id,title")
		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "unsupported")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}

func TestLoadDatabase(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Recipe{}))

	seed := []model.Recipe{
		{ID: 5, Title: "Pancakes", Ingredients: model.StringArray{"flour", "milk", "egg"}, Instructions: model.StringArray{"Mix", "Fry"}, CookingTime: 20, Difficulty: model.DifficultyEasy, Dietary: model.StringArray{"vegetarian"}, Servings: 4},
		{ID: 2, Title: "Stew", Ingredients: model.StringArray{"beef", "carrot"}, Instructions: model.StringArray{}, CookingTime: 90, Difficulty: model.DifficultyMedium, Dietary: model.StringArray{}, Servings: 6},
	}
	require.NoError(t, db.Create(&seed).Error)

	c, err := LoadDatabase(db)
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].ID, "rows are read in id order")
	assert.Equal(t, model.StringArray{"flour", "milk", "egg"}, all[1].Ingredients)
	assert.True(t, all[1].HasDiet(model.DietVegetarian))
}

func TestLoad(t *testing.T) {
	c, err := Load(SourceEmbedded, "", nil)
	require.NoError(t, err)
	assert.Positive(t, c.Len())

	_, err = Load(SourceFile, "", nil)
	assert.Error(t, err)

	_, err = Load(SourceDatabase, "", nil)
	assert.Error(t, err)

	_, err = Load("s3", "", nil)
	assert.Error(t, err)
}
