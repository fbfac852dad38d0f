// Package matching filters and scores a recipe catalog against the
// ingredients a user has on hand, and rescales recipes to a serving count.
//
// Everything here is a pure function over its arguments and the read-only
// substitution table, so callers may use it from any number of goroutines.
package matching

import (
	"slices"
	"sort"
	"strings"
)

// Match returns every recipe that passes the diet, difficulty and time
// filters, scored by the fraction of its ingredients found in
// input.Ingredients. Results are ordered by score descending; recipes with
// equal scores keep their catalog order.
func Match(recipes []Recipe, input MatchInput) []MatchResult {
	available := availableSet(input.Ingredients)

	results := make([]MatchResult, 0, len(recipes))
	for _, r := range recipes {
		if !Admits(r, input) {
			continue
		}
		results = append(results, MatchResult{
			Recipe:        cloneRecipe(r),
			Score:         score(r, available),
			Substitutions: substitutionsFor(r, available),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Admits reports whether r passes all three hard filters of input.
func Admits(r Recipe, input MatchInput) bool {
	if input.Diet != DietNone && r.Diet != input.Diet {
		return false
	}
	if input.Difficulty != DifficultyAny && r.Difficulty != input.Difficulty {
		return false
	}
	return r.Time <= input.MaxTime
}

// Score is the fraction of r's ingredient lines whose name appears in
// available. Names are compared case-insensitively.
func Score(r Recipe, available []string) float64 {
	return score(r, availableSet(available))
}

func score(r Recipe, available map[string]struct{}) float64 {
	if len(r.Ingredients) == 0 {
		return 0
	}
	overlap := 0
	for _, ing := range r.Ingredients {
		if _, ok := available[normalize(ing.Name)]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(r.Ingredients))
}

// NormalizeIngredients merges ingredient lists into one lowercase,
// trimmed, de-duplicated list in first-seen order.
func NormalizeIngredients(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, list := range lists {
		for _, name := range list {
			n := normalize(strings.TrimSpace(name))
			if n == "" {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

func availableSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[normalize(n)] = struct{}{}
	}
	return set
}

func normalize(name string) string {
	return strings.ToLower(name)
}

func cloneRecipe(r Recipe) Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Steps = slices.Clone(r.Steps)
	r.Tags = slices.Clone(r.Tags)
	return r
}
