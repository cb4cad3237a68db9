package recipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-ayur-diet/internal/catalog"
	"mcp-ayur-diet/internal/models"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func lookup(t *testing.T) FoodLookup {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c.Food
}

func khichdi() Draft {
	return Draft{
		Name: " Khichdi ",
		Ingredients: []models.RecipeIngredient{
			{FoodID: "rice", Quantity: 200, Unit: "grams"},
			{FoodID: "moong-dal", Quantity: 100, Unit: "grams"},
			{FoodID: "ghee", Quantity: 15, Unit: "grams"},
			{FoodID: "cumin", Quantity: 5, Unit: "grams"},
		},
		Instructions: []string{"Rinse rice and dal", " ", "Simmer with spices until soft"},
		Servings:     2,
	}
}

func TestBuild(t *testing.T) {
	r, err := Build(khichdi(), lookup(t), "r1", now)
	require.NoError(t, err)

	assert.Equal(t, "Khichdi", r.Name)
	assert.Equal(t, []string{"Rinse rice and dal", "Simmer with spices until soft"}, r.Instructions)
	assert.Equal(t, 15, r.PrepTime)
	assert.Equal(t, 30, r.CookTime)
	assert.Equal(t, 2, r.Servings)
	assert.Equal(t, models.DifficultyMedium, r.Difficulty)

	// (400 + 105 + 135 + 19) / 2
	assert.Equal(t, 330.0, r.NutritionalInfo.Calories)
	// (90 + 19 + 0 + 2.2) / 2 = 55.6
	assert.Equal(t, 56.0, r.NutritionalInfo.Carbs)

	// sweet x3, astringent x1, pungent x1, bitter x1
	assert.Equal(t, []models.Rasa{models.Sweet, models.Pungent, models.Bitter}, r.DominantRasas)
	// vata: 3 decrease / 0 increase; pitta: 3 decrease; kapha: 2 decrease / 2 increase
	assert.Equal(t, []models.Dosha{models.Vata, models.Pitta}, r.SuitableFor)
	assert.Equal(t, []string{
		"Contains 3 of the 6 tastes",
		"Balances vata, pitta dosha",
		"Made with fresh, natural ingredients",
	}, r.AyurvedicBenefits)
}

func TestBuildRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Draft)
	}{
		{"missing name", func(d *Draft) { d.Name = "  " }},
		{"no ingredients", func(d *Draft) { d.Ingredients = nil }},
		{"no instructions", func(d *Draft) { d.Instructions = []string{""} }},
		{"duplicate ingredient", func(d *Draft) {
			d.Ingredients = append(d.Ingredients, models.RecipeIngredient{FoodID: "rice", Quantity: 1})
		}},
		{"unknown food", func(d *Draft) {
			d.Ingredients = append(d.Ingredients, models.RecipeIngredient{FoodID: "dragonfruit", Quantity: 1})
		}},
		{"zero quantity", func(d *Draft) { d.Ingredients[0].Quantity = 0 }},
		{"bad difficulty", func(d *Draft) { d.Difficulty = "impossible" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := khichdi()
			tt.mutate(&d)
			_, err := Build(d, lookup(t), "r1", now)
			assert.ErrorIs(t, err, ErrInvalidRecipe)
		})
	}
}

func TestAnalyzeNeutral(t *testing.T) {
	a := Analyze([]models.RecipeIngredient{{FoodID: "turmeric", Quantity: 5}}, lookup(t))
	assert.Equal(t, []models.Dosha{models.Kapha}, a.SuitableFor)

	a = Analyze(nil, lookup(t))
	assert.Empty(t, a.DominantRasas)
	assert.Empty(t, a.SuitableFor)
	assert.Equal(t, "Neutral dosha effect", a.Benefits[1])
}

func TestNutritionDefaultsToOneServing(t *testing.T) {
	n := Nutrition([]models.RecipeIngredient{{FoodID: "banana", Quantity: 60}}, 0, lookup(t))
	assert.Equal(t, 53.0, n.Calories)
}
