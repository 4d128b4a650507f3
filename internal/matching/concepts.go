package matching

import "strings"

// FoodConcept maps a canonical ingredient to the keywords that identify it
// in detector labels.
type FoodConcept struct {
	Ingredient string
	Keywords   []string
}

// FoodConcepts is consulted top to bottom and the first hit wins, so entries
// with overlapping keywords must stay in this order.
var FoodConcepts = []FoodConcept{
	{"tomato", []string{"tomato", "tomatoes"}},
	{"potato", []string{"potato", "potatoes"}},
	{"onion", []string{"onion", "onions"}},
	{"garlic", []string{"garlic"}},
	{"carrot", []string{"carrot", "carrots"}},
	{"broccoli", []string{"broccoli"}},
	{"chicken", []string{"chicken", "poultry"}},
	{"beef", []string{"beef", "steak"}},
	{"pork", []string{"pork"}},
	{"fish", []string{"fish", "salmon", "tuna"}},
	{"shrimp", []string{"shrimp", "prawn"}},
	{"egg", []string{"egg", "eggs"}},
	{"cheese", []string{"cheese", "cheddar", "mozzarella", "parmesan"}},
	{"bread", []string{"bread", "baguette", "bun"}},
	{"pasta", []string{"pasta", "spaghetti", "noodle"}},
	{"rice", []string{"rice"}},
	{"lettuce", []string{"lettuce", "salad"}},
	{"cucumber", []string{"cucumber"}},
	{"bell pepper", []string{"pepper", "bell pepper", "capsicum"}},
	{"mushroom", []string{"mushroom", "mushrooms"}},
	{"avocado", []string{"avocado"}},
	{"lemon", []string{"lemon", "lime"}},
	{"apple", []string{"apple"}},
	{"banana", []string{"banana"}},
	{"orange", []string{"orange"}},
}

// MapFoodConcepts turns detector labels into canonical pantry ingredients.
// Each label maps to at most one ingredient; labels matching nothing are
// dropped. The result has no duplicates and keeps first-seen order.
func MapFoodConcepts(labels []string) []string {
	return mapConcepts(FoodConcepts, labels)
}

func mapConcepts(table []FoodConcept, labels []string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, label := range labels {
		lower := strings.ToLower(label)
		if strings.TrimSpace(lower) == "" {
			continue
		}
		for _, c := range table {
			if !containsAny(lower, c.Keywords) {
				continue
			}
			if _, ok := seen[c.Ingredient]; !ok {
				seen[c.Ingredient] = struct{}{}
				out = append(out, c.Ingredient)
			}
			break
		}
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
