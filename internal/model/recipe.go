package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Difficulty is the effort level of a recipe
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Rank orders difficulties easy < medium < hard. Unknown values sort last.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 3
	}
}

// Valid reports whether d is one of the known difficulty levels
func (d Difficulty) Valid() bool {
	return d.Rank() < 3
}

// ParseDifficulty converts user input into a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// DietaryTag labels a recipe as suitable for a diet
type DietaryTag string

const (
	DietVegetarian DietaryTag = "vegetarian"
	DietVegan      DietaryTag = "vegan"
	DietGlutenFree DietaryTag = "gluten-free"
)

// FilterableDiets are the tags a search may filter on.
var FilterableDiets = []DietaryTag{DietVegetarian, DietVegan, DietGlutenFree}

// Filterable reports whether the tag may be used as a search filter
func (t DietaryTag) Filterable() bool {
	for _, d := range FilterableDiets {
		if t == d {
			return true
		}
	}
	return false
}

// StringArray stores a string slice as a JSON column
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringArray", value)
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a catalog entry. Recipes are loaded once and never mutated.
type Recipe struct {
	ID           int         `gorm:"primaryKey;autoIncrement:false" json:"id" yaml:"id"`
	Title        string      `gorm:"size:255;not null" json:"title" yaml:"title"`
	Ingredients  StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients" yaml:"ingredients"`
	Instructions StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions" yaml:"instructions"`
	CookingTime  int         `gorm:"not null" json:"cookingTime" yaml:"cookingTime"`
	Difficulty   Difficulty  `gorm:"size:16;not null" json:"difficulty" yaml:"difficulty"`
	Dietary      StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietary" yaml:"dietary"`
	Cuisine      string      `gorm:"size:100" json:"cuisine" yaml:"cuisine"`
	Servings     int         `gorm:"not null" json:"servings" yaml:"servings"`
}

// TableName overrides the gorm table name
func (Recipe) TableName() string {
	return "recipes"
}

// HasDiet reports whether the recipe carries the given dietary tag
func (r Recipe) HasDiet(tag DietaryTag) bool {
	for _, d := range r.Dietary {
		if DietaryTag(d) == tag {
			return true
		}
	}
	return false
}
