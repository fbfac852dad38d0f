package matching

import "math"

// Scale returns a copy of ingredients with every quantity multiplied by
// targetServings / max(1, baseServings) and rounded to one decimal place,
// half away from zero. Non-positive targets are not rejected here.
func Scale(ingredients []Ingredient, baseServings, targetServings int) []Ingredient {
	factor := float64(targetServings) / float64(max(1, baseServings))

	out := make([]Ingredient, len(ingredients))
	for i, ing := range ingredients {
		out[i] = Ingredient{
			Name:     ing.Name,
			Quantity: roundTenth(ing.Quantity * factor),
			Unit:     ing.Unit,
		}
	}
	return out
}

// ScaleRecipe returns a copy of r whose ingredients serve targetServings.
func ScaleRecipe(r Recipe, targetServings int) Recipe {
	scaled := cloneRecipe(r)
	scaled.Ingredients = Scale(r.Ingredients, r.Servings, targetServings)
	scaled.Servings = targetServings
	return scaled
}

func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
