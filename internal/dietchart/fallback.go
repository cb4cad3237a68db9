// internal/dietchart/fallback.go
package dietchart

import (
	"fmt"

	"mcp-ayur-diet/internal/compatibility"
	"mcp-ayur-diet/internal/models"
)

// slotSizes is the number of foods in breakfast, mid-morning, lunch, evening
// and dinner.
var slotSizes = [5]int{3, 2, 5, 2, 3}

var fallbackInstructions = [5]string{
	"Begin with warm, cooked foods to support digestion.",
	"Fresh fruits or herbal tea.",
	"Complete meal with all six tastes.",
	"Light snack with herbal tea.",
	"Light, warm, and easily digestible.",
}

var fallbackGuidelines = []string{
	"Maintain regular meal times",
	"Eat according to your hunger",
	"Include all six tastes in your meals",
	"Prefer warm, cooked foods",
	"Practice mindful eating",
}

var fallbackNutrition = models.Nutrition{Calories: 1800, Protein: 70, Carbs: 220, Fat: 60, Fiber: 30}

// Fallback builds the static chart used when no model output is usable. It
// depends only on its inputs; ID and CreatedAt are left for the caller.
func Fallback(req Request, foods []models.Food) *models.DietChart {
	req = req.withDefaults()

	var picked []models.Food
	for _, r := range compatibility.Rank(foods, req.Patient) {
		if r.Compatibility.Score == 0 {
			continue
		}
		picked = append(picked, r.Food)
	}

	var slots [5]models.MealSlot
	next := 0
	for i, n := range slotSizes {
		end := min(next+n, len(picked))
		slots[i] = models.MealSlot{
			Foods:        append([]models.Food{}, picked[next:end]...),
			Instructions: fallbackInstructions[i],
		}
		next = end
	}

	return &models.DietChart{
		PatientID:   req.Patient.ID,
		DoctorID:    req.Patient.DoctorID,
		Title:       fmt.Sprintf("Personalized Diet Plan - %d Days", req.Duration),
		Description: "A balanced Ayurvedic diet plan tailored to your constitution and health goals.",
		Duration:    req.Duration,
		Meals: models.Meals{
			Breakfast:  slots[0],
			MidMorning: slots[1],
			Lunch:      slots[2],
			Evening:    slots[3],
			Dinner:     slots[4],
		},
		TotalNutrition:      fallbackNutrition,
		AyurvedicGuidelines: append([]string{}, fallbackGuidelines...),
		Restrictions:        req.restrictions(),
		Source:              models.SourceFallback,
	}
}
