// internal/models/recipe.go
package models

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type RecipeIngredient struct {
	FoodID   string  `json:"food_id"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type Recipe struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Ingredients       []RecipeIngredient `json:"ingredients"`
	Instructions      []string           `json:"instructions"`
	CookingTips       []string           `json:"cooking_tips"`
	PrepTime          int                `json:"prep_time"`
	CookTime          int                `json:"cook_time"`
	Servings          int                `json:"servings"`
	Difficulty        Difficulty         `json:"difficulty"`
	AyurvedicBenefits []string           `json:"ayurvedic_benefits"`
	DominantRasas     []Rasa             `json:"dominant_rasas"`
	SuitableFor       []Dosha            `json:"suitable_for"`
	Season            []Season           `json:"season"`
	NutritionalInfo   Nutrition          `json:"nutritional_info"`
	CreatedAt         time.Time          `json:"created_at"`
}
