// internal/recipe/builder.go
package recipe

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"mcp-ayur-diet/internal/models"
)

var ErrInvalidRecipe = errors.New("invalid recipe")

// FoodLookup resolves an ingredient's food id against the catalog.
type FoodLookup func(id string) (models.Food, bool)

// Draft is a recipe as composed in the builder; zero values take defaults.
type Draft struct {
	Name         string                    `json:"name"`
	Ingredients  []models.RecipeIngredient `json:"ingredients"`
	Instructions []string                  `json:"instructions"`
	CookingTips  []string                  `json:"cooking_tips"`
	PrepTime     int                       `json:"prep_time"`
	CookTime     int                       `json:"cook_time"`
	Servings     int                       `json:"servings"`
	Difficulty   models.Difficulty         `json:"difficulty"`
	Season       []models.Season           `json:"season"`
}

// Analysis summarizes the Ayurvedic character of a set of ingredients.
type Analysis struct {
	DominantRasas []models.Rasa  `json:"dominant_rasas"`
	SuitableFor   []models.Dosha `json:"suitable_for"`
	Benefits      []string       `json:"benefits"`
}

// Build validates a draft and computes nutrition and analysis.
func Build(d Draft, lookup FoodLookup, id string, now time.Time) (*models.Recipe, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: recipe name is required", ErrInvalidRecipe)
	}
	if len(d.Ingredients) == 0 {
		return nil, fmt.Errorf("%w: at least one ingredient is required", ErrInvalidRecipe)
	}
	instructions := nonBlank(d.Instructions)
	if len(instructions) == 0 {
		return nil, fmt.Errorf("%w: cooking instructions are required", ErrInvalidRecipe)
	}

	seen := make(map[string]bool, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		if seen[ing.FoodID] {
			return nil, fmt.Errorf("%w: ingredient %q added twice", ErrInvalidRecipe, ing.FoodID)
		}
		seen[ing.FoodID] = true
		if _, ok := lookup(ing.FoodID); !ok {
			return nil, fmt.Errorf("%w: unknown food %q", ErrInvalidRecipe, ing.FoodID)
		}
		if ing.Quantity <= 0 {
			return nil, fmt.Errorf("%w: ingredient %q needs a positive quantity", ErrInvalidRecipe, ing.FoodID)
		}
	}
	if d.Difficulty != "" && !d.Difficulty.Valid() {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidRecipe, d.Difficulty)
	}

	r := &models.Recipe{
		ID:           id,
		Name:         name,
		Ingredients:  append([]models.RecipeIngredient(nil), d.Ingredients...),
		Instructions: instructions,
		CookingTips:  nonBlank(d.CookingTips),
		PrepTime:     orInt(d.PrepTime, 15),
		CookTime:     orInt(d.CookTime, 30),
		Servings:     orInt(d.Servings, 4),
		Difficulty:   d.Difficulty,
		Season:       append([]models.Season{}, d.Season...),
		CreatedAt:    now,
	}
	if r.Difficulty == "" {
		r.Difficulty = models.DifficultyMedium
	}

	r.NutritionalInfo = Nutrition(r.Ingredients, r.Servings, lookup)
	a := Analyze(r.Ingredients, lookup)
	r.DominantRasas = a.DominantRasas
	r.SuitableFor = a.SuitableFor
	r.AyurvedicBenefits = a.Benefits
	return r, nil
}

// Nutrition returns rounded per-serving macros. Unknown foods are skipped.
func Nutrition(ingredients []models.RecipeIngredient, servings int, lookup FoodLookup) models.Nutrition {
	var total models.Nutrition
	for _, ing := range ingredients {
		f, ok := lookup(ing.FoodID)
		if !ok || f.ServingSize <= 0 {
			continue
		}
		ratio := ing.Quantity / f.ServingSize
		total.Calories += f.Calories * ratio
		total.Protein += f.Protein * ratio
		total.Carbs += f.Carbs * ratio
		total.Fat += f.Fat * ratio
		total.Fiber += f.Fiber * ratio
	}

	n := float64(orInt(servings, 1))
	return models.Nutrition{
		Calories: math.Round(total.Calories / n),
		Protein:  math.Round(total.Protein / n),
		Carbs:    math.Round(total.Carbs / n),
		Fat:      math.Round(total.Fat / n),
		Fiber:    math.Round(total.Fiber / n),
	}
}

// Analyze counts tastes and dosha effects across ingredients.
func Analyze(ingredients []models.RecipeIngredient, lookup FoodLookup) Analysis {
	rasaCounts := make(map[models.Rasa]int, len(models.Rasas))
	effects := make(map[models.Dosha]map[models.Effect]int, len(models.Doshas))
	for _, d := range models.Doshas {
		effects[d] = map[models.Effect]int{}
	}

	for _, ing := range ingredients {
		f, ok := lookup(ing.FoodID)
		if !ok {
			continue
		}
		for _, r := range f.Ayurvedic.Rasa {
			rasaCounts[r]++
		}
		for _, d := range models.Doshas {
			effects[d][f.Ayurvedic.DoshaEffect.For(d)]++
		}
	}

	var rasas []models.Rasa
	for _, r := range models.Rasas {
		if rasaCounts[r] > 0 {
			rasas = append(rasas, r)
		}
	}
	sort.SliceStable(rasas, func(i, j int) bool {
		return rasaCounts[rasas[i]] > rasaCounts[rasas[j]]
	})
	if len(rasas) > 3 {
		rasas = rasas[:3]
	}

	suitable := []models.Dosha{}
	for _, d := range models.Doshas {
		if effects[d][models.Decrease] > effects[d][models.Increase] {
			suitable = append(suitable, d)
		}
	}

	doshaBenefit := "Neutral dosha effect"
	if len(suitable) > 0 {
		names := make([]string, len(suitable))
		for i, d := range suitable {
			names[i] = string(d)
		}
		doshaBenefit = fmt.Sprintf("Balances %s dosha", strings.Join(names, ", "))
	}

	return Analysis{
		DominantRasas: append([]models.Rasa{}, rasas...),
		SuitableFor:   suitable,
		Benefits: []string{
			fmt.Sprintf("Contains %d of the 6 tastes", len(rasas)),
			doshaBenefit,
			"Made with fresh, natural ingredients",
		},
	}
}

func nonBlank(items []string) []string {
	out := []string{}
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func orInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
