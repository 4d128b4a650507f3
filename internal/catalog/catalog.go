// Package catalog holds the recipe catalog. A Catalog is built once at
// startup and is read-only afterwards, so it is safe for concurrent use.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pageza/pantry-match/backend/internal/model"
)

// ErrNotFound is returned when a recipe id is not in the catalog
var ErrNotFound = errors.New("recipe not found")

// DefaultSuggestLimit caps autocomplete results
const DefaultSuggestLimit = 8

// Catalog is an immutable, ordered set of recipes
type Catalog struct {
	recipes     []model.Recipe
	byID        map[int]int
	ingredients []string
}

// New validates recipes and builds a Catalog that keeps their order.
// Recipes without ingredients are accepted; they always score 0.
func New(recipes []model.Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes: make([]model.Recipe, 0, len(recipes)),
		byID:    make(map[int]int, len(recipes)),
	}

	var problems []string
	vocab := make(map[string]struct{})

	for i, r := range recipes {
		if _, dup := c.byID[r.ID]; dup {
			problems = append(problems, fmt.Sprintf("recipe %d: duplicate id", r.ID))
			continue
		}
		if err := validate(r); err != nil {
			problems = append(problems, fmt.Sprintf("recipe %d (index %d): %v", r.ID, i, err))
			continue
		}

		r = clone(r)
		r.Difficulty = model.Difficulty(strings.ToLower(string(r.Difficulty)))
		for j, d := range r.Dietary {
			r.Dietary[j] = strings.ToLower(strings.TrimSpace(d))
		}
		for _, ing := range r.Ingredients {
			if n := strings.ToLower(strings.TrimSpace(ing)); n != "" {
				vocab[n] = struct{}{}
			}
		}

		c.byID[r.ID] = len(c.recipes)
		c.recipes = append(c.recipes, r)
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid catalog:\n%s", strings.Join(problems, "\n"))
	}

	c.ingredients = make([]string, 0, len(vocab))
	for ing := range vocab {
		c.ingredients = append(c.ingredients, ing)
	}
	slices.Sort(c.ingredients)

	return c, nil
}

func validate(r model.Recipe) error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if r.CookingTime <= 0 {
		return fmt.Errorf("cookingTime must be positive, got %d", r.CookingTime)
	}
	if r.Servings <= 0 {
		return fmt.Errorf("servings must be positive, got %d", r.Servings)
	}
	if !model.Difficulty(strings.ToLower(string(r.Difficulty))).Valid() {
		return fmt.Errorf("unknown difficulty %q", r.Difficulty)
	}
	return nil
}

func clone(r model.Recipe) model.Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Instructions = slices.Clone(r.Instructions)
	r.Dietary = slices.Clone(r.Dietary)
	if r.Ingredients == nil {
		r.Ingredients = model.StringArray{}
	}
	if r.Instructions == nil {
		r.Instructions = model.StringArray{}
	}
	if r.Dietary == nil {
		r.Dietary = model.StringArray{}
	}
	return r
}

// Len returns the number of recipes
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// All returns the recipes in catalog order. The slice is fresh on every call;
// the recipes inside must be treated as read-only.
func (c *Catalog) All() []model.Recipe {
	return slices.Clone(c.recipes)
}

// Get looks up a recipe by id
func (c *Catalog) Get(id int) (model.Recipe, error) {
	idx, ok := c.byID[id]
	if !ok {
		return model.Recipe{}, fmt.Errorf("recipe %d: %w", id, ErrNotFound)
	}
	return c.recipes[idx], nil
}

// Ingredients returns every distinct ingredient phrase in the catalog,
// lowercased and sorted.
func (c *Catalog) Ingredients() []string {
	return slices.Clone(c.ingredients)
}

// Suggest returns up to limit ingredient phrases containing query
// (case-insensitive), skipping any listed in exclude. A blank query or a
// non-positive limit yields no suggestions.
func (c *Catalog) Suggest(query string, exclude []string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []string{}
	if q == "" || limit <= 0 {
		return out
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, e := range exclude {
		skip[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}

	for _, ing := range c.ingredients {
		if !strings.Contains(ing, q) {
			continue
		}
		if _, ok := skip[ing]; ok {
			continue
		}
		out = append(out, ing)
		if len(out) == limit {
			break
		}
	}
	return out
}
