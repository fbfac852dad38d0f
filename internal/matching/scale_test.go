package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleHalvesQuantities(t *testing.T) {
	got := Scale([]Ingredient{{Name: "flour", Quantity: 2, Unit: "cup"}}, 4, 2)

	assert.Equal(t, []Ingredient{{Name: "flour", Quantity: 1.0, Unit: "cup"}}, got)
}

func TestScaleGuardsZeroBaseServings(t *testing.T) {
	got := Scale([]Ingredient{{Quantity: 3}}, 0, 6)

	require.Len(t, got, 1)
	assert.Equal(t, 18.0, got[0].Quantity)
	assert.False(t, math.IsInf(got[0].Quantity, 0))
}

func TestScaleNegativeBaseServingsUsesOne(t *testing.T) {
	got := Scale([]Ingredient{{Quantity: 1.5}}, -3, 2)
	assert.Equal(t, 3.0, got[0].Quantity)
}

func TestScaleRoundsHalfAwayFromZero(t *testing.T) {
	got := Scale([]Ingredient{{Quantity: 0.25}, {Quantity: 0.24}, {Quantity: 0.125}}, 1, 1)

	assert.Equal(t, 0.3, got[0].Quantity)
	assert.Equal(t, 0.2, got[1].Quantity)
	assert.Equal(t, 0.1, got[2].Quantity)

	neg := Scale([]Ingredient{{Quantity: 0.25}}, 1, -1)
	assert.Equal(t, -0.3, neg[0].Quantity)
}

func TestScaleIsLinear(t *testing.T) {
	ings := []Ingredient{
		{Name: "rice", Quantity: 1.234, Unit: "cup"},
		{Name: "water", Quantity: 2.5, Unit: "cup"},
		{Name: "salt", Quantity: 0, Unit: "tsp"},
	}

	for _, tc := range []struct{ base, target int }{{2, 3}, {4, 1}, {3, 7}, {1, 0}} {
		got := Scale(ings, tc.base, tc.target)
		require.Len(t, got, len(ings))
		for i, in := range ings {
			want := math.Round(in.Quantity*(float64(tc.target)/float64(max(1, tc.base)))*10) / 10
			assert.Equal(t, want, got[i].Quantity)
			assert.Equal(t, in.Name, got[i].Name)
			assert.Equal(t, in.Unit, got[i].Unit)
		}
	}
}

func TestScaleSameServingsKeepsQuantities(t *testing.T) {
	ings := []Ingredient{{Name: "oil", Quantity: 1.5, Unit: "tbsp"}, {Name: "egg", Quantity: 2}}
	assert.Equal(t, ings, Scale(ings, 4, 4))
}

func TestScaleDoesNotMutateInput(t *testing.T) {
	ings := []Ingredient{{Name: "sugar", Quantity: 100, Unit: "g"}}

	got := Scale(ings, 2, 4)
	got[0].Quantity = 1

	assert.Equal(t, 100.0, ings[0].Quantity)
}

func TestScaleZeroTargetIsAccepted(t *testing.T) {
	got := Scale([]Ingredient{{Quantity: 5}}, 2, 0)
	assert.Equal(t, 0.0, got[0].Quantity)
}

func TestScaleRecipe(t *testing.T) {
	r := Recipe{ID: "r", Servings: 2, Ingredients: []Ingredient{{Name: "pasta", Quantity: 200, Unit: "g"}}}

	scaled := ScaleRecipe(r, 3)

	assert.Equal(t, 3, scaled.Servings)
	assert.Equal(t, 300.0, scaled.Ingredients[0].Quantity)
	assert.Equal(t, 2, r.Servings)
	assert.Equal(t, 200.0, r.Ingredients[0].Quantity)
}
