package matching

import "slices"

// substitutionTable maps a common ingredient to replacements, best first.
// It is never written after package initialization.
var substitutionTable = map[string][]string{
	"butter":    {"olive oil", "coconut oil"},
	"milk":      {"oat milk", "almond milk"},
	"egg":       {"flax egg", "chia egg"},
	"beef":      {"turkey", "tofu crumbles"},
	"cheese":    {"nutritional yeast"},
	"soy sauce": {"tamari", "coconut aminos"},
	"pasta":     {"zoodles", "gluten-free pasta"},
}

// Substitutes returns the suggested replacements for a lowercase ingredient
// name, or nil when the table has no entry.
func Substitutes(name string) []string {
	subs, ok := substitutionTable[name]
	if !ok {
		return nil
	}
	return slices.Clone(subs)
}

func substitutionsFor(r Recipe, available map[string]struct{}) map[string][]string {
	out := make(map[string][]string)
	for _, ing := range r.Ingredients {
		name := normalize(ing.Name)
		if _, ok := available[name]; ok {
			continue
		}
		if subs := Substitutes(name); subs != nil {
			out[name] = subs
		}
	}
	return out
}
