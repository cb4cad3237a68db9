// internal/dietchart/prompt.go
package dietchart

import (
	"fmt"
	"strings"
)

const responseFormat = `Respond with a single JSON object in this exact format:
{
  "description": "two or three sentence summary of the plan",
  "meals": {
    "breakfast":   {"foods": ["food name"], "instructions": "..."},
    "mid_morning": {"foods": ["food name"], "instructions": "..."},
    "lunch":       {"foods": ["food name"], "instructions": "..."},
    "evening":     {"foods": ["food name"], "instructions": "..."},
    "dinner":      {"foods": ["food name"], "instructions": "..."}
  },
  "total_nutrition": {"calories": 0, "protein": 0, "carbs": 0, "fat": 0, "fiber": 0},
  "ayurvedic_guidelines": ["..."]
}
Only use food names from the AVAILABLE FOODS list.`

// BuildPrompt renders the patient profile, the request lists and the foods the
// model may choose from.
func BuildPrompt(req Request, foodNames []string) string {
	req = req.withDefaults()
	p := req.Patient

	var b strings.Builder
	fmt.Fprintf(&b, "As an expert Ayurvedic dietitian, create a comprehensive %d-day diet plan for:\n\n", req.Duration)
	b.WriteString("PATIENT PROFILE:\n")
	fmt.Fprintf(&b, "- Age: %d, Gender: %s\n", p.Age, p.Gender)
	fmt.Fprintf(&b, "- Weight: %gkg, Height: %gcm\n", p.Weight, p.Height)
	fmt.Fprintf(&b, "- Activity Level: %s\n", p.ActivityLevel)
	fmt.Fprintf(&b, "- Prakriti (Constitution): %s\n", p.Prakriti)
	fmt.Fprintf(&b, "- Vikriti (Current Imbalance): %s\n", p.Vikriti)
	fmt.Fprintf(&b, "- Dietary Habits: %s\n", p.DietaryHabits)
	fmt.Fprintf(&b, "- Meal Frequency: %d meals/day\n", p.MealFrequency)
	fmt.Fprintf(&b, "- Water Intake: %gL/day\n", p.WaterIntake)
	fmt.Fprintf(&b, "- Bowel Movements: %s\n", p.BowelMovements)
	fmt.Fprintf(&b, "- Sleep: %g hours/night\n", p.SleepHours)
	fmt.Fprintf(&b, "- Season: %s\n", p.CurrentSeason())
	fmt.Fprintf(&b, "- Medical Conditions: %s\n", list(p.MedicalConditions))
	fmt.Fprintf(&b, "- Allergies: %s\n\n", list(p.Allergies))

	fmt.Fprintf(&b, "PREFERENCES: %s\n", list(req.Preferences))
	fmt.Fprintf(&b, "RESTRICTIONS: %s\n", list(req.Restrictions))
	fmt.Fprintf(&b, "GOALS: %s\n\n", list(req.Goals))

	if len(foodNames) > 0 {
		fmt.Fprintf(&b, "AVAILABLE FOODS: %s\n\n", strings.Join(foodNames, ", "))
	}

	b.WriteString("Plan five meals (Breakfast, Mid-Morning, Lunch, Evening, Dinner) following Ayurvedic timing, ")
	b.WriteString("and avoid foods that aggravate the constitution or current imbalance.\n\n")
	b.WriteString(responseFormat)
	return b.String()
}

func list(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
