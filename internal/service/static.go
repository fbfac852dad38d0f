package service

import (
	"github.com/smartchef/backend/internal/matching"
)

func ings(lines ...matching.Ingredient) []matching.Ingredient { return lines }

func item(name string, qty float64, unit string) matching.Ingredient {
	return matching.Ingredient{Name: name, Quantity: qty, Unit: unit}
}

// staticRecipes is the built-in catalog served when no database is
// configured or the database is failing.
var staticRecipes = []matching.Recipe{
	{
		ID: "tomato-basil-pasta", Slug: "tomato-basil-pasta",
		Name: "Tomato Basil Pasta", Cuisine: "Italian",
		Diet: matching.DietVegetarian, Difficulty: matching.DifficultyEasy,
		Time: 25, Servings: 2,
		Ingredients: ings(
			item("pasta", 200, "g"),
			item("tomato", 3, "pc"),
			item("garlic", 2, "clove"),
			item("basil", 10, "leaf"),
			item("olive oil", 2, "tbsp"),
		),
		Steps: []string{
			"Boil the pasta in salted water until al dente.",
			"Sauté garlic in olive oil, add chopped tomatoes and simmer for 10 minutes.",
			"Toss the pasta with the sauce and torn basil.",
		},
		Nutrition: matching.Nutrition{Calories: 520, Protein: 16, Carbs: 86, Fat: 14},
		Tags:      []string{"quick", "weeknight", "dairy-free", "nut-free"},
		Rating:    4.6,
	},
	{
		ID: "veggie-omelette", Slug: "veggie-omelette",
		Name: "Veggie Omelette", Cuisine: "French",
		Diet: matching.DietVegetarian, Difficulty: matching.DifficultyEasy,
		Time: 10, Servings: 1,
		Ingredients: ings(
			item("egg", 3, "pc"),
			item("milk", 2, "tbsp"),
			item("spinach", 30, "g"),
			item("cheese", 30, "g"),
			item("butter", 1, "tsp"),
		),
		Steps: []string{
			"Whisk eggs with milk and a pinch of salt.",
			"Melt butter in a pan, wilt the spinach and pour in the eggs.",
			"Sprinkle cheese, fold and serve.",
		},
		Nutrition: matching.Nutrition{Calories: 380, Protein: 26, Carbs: 4, Fat: 28},
		Tags:      []string{"breakfast", "quick", "nut-free"},
		Rating:    4.4,
	},
	{
		ID: "chickpea-curry", Slug: "chickpea-curry",
		Name: "Chickpea Coconut Curry", Cuisine: "Indian",
		Diet: matching.DietVegan, Difficulty: matching.DifficultyMedium,
		Time: 35, Servings: 4,
		Ingredients: ings(
			item("chickpeas", 800, "g"),
			item("coconut milk", 400, "ml"),
			item("onion", 1, "pc"),
			item("garlic", 3, "clove"),
			item("tomato", 2, "pc"),
			item("curry powder", 2, "tbsp"),
		),
		Steps: []string{
			"Soften the onion and garlic, then fry the curry powder for a minute.",
			"Add tomatoes, chickpeas and coconut milk.",
			"Simmer for 20 minutes until thick.",
		},
		Nutrition: matching.Nutrition{Calories: 450, Protein: 15, Carbs: 45, Fat: 24},
		Tags:      []string{"curry", "meal-prep", "dairy-free", "nut-free"},
		Rating:    4.7,
	},
	{
		ID: "beef-stir-fry", Slug: "beef-stir-fry",
		Name: "Beef and Broccoli Stir Fry", Cuisine: "Chinese",
		Diet: matching.DietNone, Difficulty: matching.DifficultyMedium,
		Time: 30, Servings: 3,
		Ingredients: ings(
			item("beef", 400, "g"),
			item("broccoli", 300, "g"),
			item("soy sauce", 3, "tbsp"),
			item("garlic", 2, "clove"),
			item("ginger", 1, "tbsp"),
			item("rice", 1.5, "cup"),
		),
		Steps: []string{
			"Cook the rice.",
			"Sear thinly sliced beef over high heat and set aside.",
			"Stir fry broccoli with garlic and ginger, return the beef and add soy sauce.",
		},
		Nutrition: matching.Nutrition{Calories: 610, Protein: 38, Carbs: 62, Fat: 20},
		Tags:      []string{"stir-fry", "dairy-free", "nut-free"},
		Rating:    4.3,
	},
	{
		ID: "quinoa-salad", Slug: "quinoa-salad",
		Name: "Lemon Quinoa Salad", Cuisine: "Mediterranean",
		Diet: matching.DietGlutenFree, Difficulty: matching.DifficultyEasy,
		Time: 20, Servings: 2,
		Ingredients: ings(
			item("quinoa", 1, "cup"),
			item("cucumber", 1, "pc"),
			item("tomato", 2, "pc"),
			item("lemon", 1, "pc"),
			item("olive oil", 2, "tbsp"),
			item("feta", 80, "g"),
		),
		Steps: []string{
			"Rinse and cook the quinoa, then let it cool.",
			"Dice cucumber and tomatoes.",
			"Dress with lemon juice and olive oil and crumble over the feta.",
		},
		Nutrition: matching.Nutrition{Calories: 420, Protein: 14, Carbs: 48, Fat: 19},
		Tags:      []string{"salad", "lunch", "nut-free"},
		Rating:    4.5,
	},
	{
		ID: "mushroom-risotto", Slug: "mushroom-risotto",
		Name: "Mushroom Risotto", Cuisine: "Italian",
		Diet: matching.DietVegetarian, Difficulty: matching.DifficultyHard,
		Time: 50, Servings: 4,
		Ingredients: ings(
			item("arborio rice", 300, "g"),
			item("mushroom", 250, "g"),
			item("onion", 1, "pc"),
			item("vegetable stock", 1, "l"),
			item("butter", 2, "tbsp"),
			item("cheese", 50, "g"),
		),
		Steps: []string{
			"Sauté onion and mushrooms in butter.",
			"Toast the rice, then add hot stock one ladle at a time, stirring constantly.",
			"Finish with cheese and the rest of the butter.",
		},
		Nutrition: matching.Nutrition{Calories: 560, Protein: 14, Carbs: 78, Fat: 20},
		Tags:      []string{"comfort", "nut-free"},
		Rating:    4.8,
	},
	{
		ID: "black-bean-tacos", Slug: "black-bean-tacos",
		Name: "Black Bean Tacos", Cuisine: "Mexican",
		Diet: matching.DietVegan, Difficulty: matching.DifficultyEasy,
		Time: 15, Servings: 2,
		Ingredients: ings(
			item("black beans", 400, "g"),
			item("tortilla", 6, "pc"),
			item("avocado", 1, "pc"),
			item("lime", 1, "pc"),
			item("onion", 0.5, "pc"),
		),
		Steps: []string{
			"Warm the beans with diced onion and season.",
			"Mash the avocado with lime juice.",
			"Fill warm tortillas with beans and avocado.",
		},
		Nutrition: matching.Nutrition{Calories: 480, Protein: 17, Carbs: 64, Fat: 18},
		Tags:      []string{"quick", "street-food", "dairy-free", "nut-free"},
		Rating:    4.2,
	},
	{
		ID: "pancakes", Slug: "pancakes",
		Name: "Fluffy Pancakes", Cuisine: "American",
		Diet: matching.DietVegetarian, Difficulty: matching.DifficultyEasy,
		Time: 20, Servings: 4,
		Ingredients: ings(
			item("flour", 1.5, "cup"),
			item("milk", 1.25, "cup"),
			item("egg", 1, "pc"),
			item("butter", 3, "tbsp"),
			item("sugar", 1, "tbsp"),
			item("baking powder", 3.5, "tsp"),
		),
		Steps: []string{
			"Whisk the dry ingredients together.",
			"Add milk, egg and melted butter and mix until just combined.",
			"Cook ladles of batter on a hot griddle until bubbles form, then flip.",
		},
		Nutrition: matching.Nutrition{Calories: 350, Protein: 9, Carbs: 48, Fat: 13},
		Tags:      []string{"breakfast", "sweet"},
		Rating:    4.6,
	},
}

// StaticRecipes returns a copy of the built-in catalog.
func StaticRecipes() []matching.Recipe {
	out := make([]matching.Recipe, len(staticRecipes))
	for i, r := range staticRecipes {
		out[i] = r
		out[i].Ingredients = append([]matching.Ingredient(nil), r.Ingredients...)
		out[i].Steps = append([]string(nil), r.Steps...)
		out[i].Tags = append([]string(nil), r.Tags...)
	}
	return out
}
