package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapFoodConcepts(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   []string
	}{
		{
			name:   "labels containing keywords map to canonical names",
			labels: []string{"ripe tomato", "cheddar cheese slice"},
			want:   []string{"tomato", "cheese"},
		},
		{
			name:   "case is ignored",
			labels: []string{"Fresh SALMON fillet"},
			want:   []string{"fish"},
		},
		{
			name:   "duplicates collapse",
			labels: []string{"tomatoes", "tomato", "cherry tomato"},
			want:   []string{"tomato"},
		},
		{
			name:   "unknown labels are dropped",
			labels: []string{"plate", "table", ""},
			want:   []string{},
		},
		{
			name:   "first table entry wins over later ones",
			labels: []string{"egg salad"},
			want:   []string{"egg"},
		},
		{
			name:   "a label maps to a single ingredient",
			labels: []string{"potato and onion soup"},
			want:   []string{"potato"},
		},
		{
			name:   "pepper maps to bell pepper",
			labels: []string{"red pepper"},
			want:   []string{"bell pepper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapFoodConcepts(tt.labels))
		})
	}
}

func TestMapConcepts_TableOrderDecides(t *testing.T) {
	table := []FoodConcept{
		{"first", []string{"shared"}},
		{"second", []string{"shared", "other"}},
	}

	assert.Equal(t, []string{"first"}, mapConcepts(table, []string{"a shared thing"}))
	assert.Equal(t, []string{"second"}, mapConcepts(table, []string{"other"}))
}
