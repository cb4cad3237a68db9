// internal/dietchart/parse.go
package dietchart

import (
	"encoding/json"
	"fmt"
	"strings"

	"mcp-ayur-diet/internal/compatibility"
	"mcp-ayur-diet/internal/models"
)

type aiSlot struct {
	Foods        []string `json:"foods"`
	Instructions string   `json:"instructions"`
}

type aiChart struct {
	Description string `json:"description"`
	Meals       struct {
		Breakfast  aiSlot `json:"breakfast"`
		MidMorning aiSlot `json:"mid_morning"`
		Lunch      aiSlot `json:"lunch"`
		Evening    aiSlot `json:"evening"`
		Dinner     aiSlot `json:"dinner"`
	} `json:"meals"`
	TotalNutrition      *models.Nutrition `json:"total_nutrition"`
	AyurvedicGuidelines []string          `json:"ayurvedic_guidelines"`
}

var aiInstructions = [5]string{
	"Start your day with warm, nourishing foods that kindle digestive fire.",
	"Light snack to maintain energy levels.",
	"Largest meal of the day when digestive fire is strongest.",
	"Light refreshment to bridge lunch and dinner.",
	"Light, easily digestible foods for better sleep.",
}

var aiGuidelines = []string{
	"Eat in a calm, peaceful environment",
	"Chew food thoroughly",
	"Avoid drinking cold water with meals",
	"Follow regular meal timings",
	"Practice gratitude before eating",
}

var aiNutrition = models.Nutrition{Calories: 2000, Protein: 80, Carbs: 250, Fat: 70, Fiber: 35}

// Parse extracts the JSON object from model output and resolves food names
// against foods. Names the catalogue does not know are dropped, as are foods
// excluded for the patient (score 0), matching Fallback.
func Parse(text string, req Request, foods []models.Food) (*models.DietChart, error) {
	req = req.withDefaults()

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object found", ErrUnstructuredResponse)
	}

	var raw aiChart
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnstructuredResponse, err)
	}

	index := make(map[string]models.Food, len(foods)*2)
	for _, f := range foods {
		if compatibility.Score(f, req.Patient).Score == 0 {
			continue
		}
		index[strings.ToLower(f.ID)] = f
		index[strings.ToLower(f.Name)] = f
	}

	slots := [5]aiSlot{raw.Meals.Breakfast, raw.Meals.MidMorning, raw.Meals.Lunch, raw.Meals.Evening, raw.Meals.Dinner}
	var resolved [5]models.MealSlot
	matched := 0
	for i, s := range slots {
		resolved[i] = models.MealSlot{Foods: []models.Food{}, Instructions: strings.TrimSpace(s.Instructions)}
		if resolved[i].Instructions == "" {
			resolved[i].Instructions = aiInstructions[i]
		}
		for _, name := range s.Foods {
			if f, ok := index[strings.ToLower(strings.TrimSpace(name))]; ok {
				resolved[i].Foods = append(resolved[i].Foods, f)
				matched++
			}
		}
	}
	if matched == 0 {
		return nil, fmt.Errorf("%w: no known suitable foods in meal plan", ErrUnstructuredResponse)
	}

	chart := &models.DietChart{
		PatientID:   req.Patient.ID,
		DoctorID:    req.Patient.DoctorID,
		Title:       fmt.Sprintf("AI Generated Diet Plan - %d Days", req.Duration),
		Description: strings.TrimSpace(raw.Description),
		Duration:    req.Duration,
		Meals: models.Meals{
			Breakfast:  resolved[0],
			MidMorning: resolved[1],
			Lunch:      resolved[2],
			Evening:    resolved[3],
			Dinner:     resolved[4],
		},
		TotalNutrition:      aiNutrition,
		AyurvedicGuidelines: append([]string{}, aiGuidelines...),
		Restrictions:        req.restrictions(),
		Source:              models.SourceAI,
	}
	if chart.Description == "" {
		chart.Description = summarize(text)
	}
	if raw.TotalNutrition != nil && raw.TotalNutrition.Calories > 0 {
		chart.TotalNutrition = *raw.TotalNutrition
	}
	if g := nonBlank(raw.AyurvedicGuidelines); len(g) > 0 {
		chart.AyurvedicGuidelines = g
	}
	return chart, nil
}

func summarize(text string) string {
	text = strings.TrimSpace(text)
	r := []rune(text)
	if len(r) <= 200 {
		return text
	}
	return string(r[:200]) + "..."
}

func nonBlank(items []string) []string {
	var out []string
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
