// internal/compatibility/scorer.go
package compatibility

import (
	"fmt"
	"math"
	"strings"

	"mcp-ayur-diet/internal/models"
)

const (
	baseScore = 50
	minScore  = 0
	maxScore  = 100
)

// evaluation accumulates the outcome of the rule chain for one food.
type evaluation struct {
	score           float64
	excluded        bool
	reasons         []string
	recommendations []string
}

func (e *evaluation) adjust(delta float64, reason string) {
	e.score += delta
	e.reasons = append(e.reasons, reason)
}

func (e *evaluation) recommend(rec string) {
	e.recommendations = append(e.recommendations, rec)
}

// exclude marks a hard exclusion; the final score is forced to zero.
func (e *evaluation) exclude(reason string) {
	e.score = 0
	e.excluded = true
	e.reasons = append(e.reasons, reason)
}

type rule func(f models.Food, p models.Patient, e *evaluation)

// rules run in order; later adjustments never lift an excluded food above zero.
var rules = []rule{
	prakritiRule,
	vikritiRule,
	digestionRule,
	activityRule,
	dietRule,
	allergyRule,
	diabetesRule,
	hypertensionRule,
	seasonRule,
}

// Score rates how well food suits patient. It is a pure function of its inputs.
func Score(food models.Food, patient models.Patient) models.CompatibilityResult {
	e := &evaluation{score: baseScore}
	for _, r := range rules {
		r(food, patient, e)
	}

	score := e.score
	if e.excluded {
		score = 0
	}
	score = math.Max(minScore, math.Min(maxScore, score))

	return models.CompatibilityResult{
		FoodID:          food.ID,
		PatientID:       patient.ID,
		Score:           int(math.Round(score)),
		Reasons:         nonNil(e.reasons),
		Recommendations: nonNil(e.recommendations),
	}
}

var moderation = map[models.Dosha]string{
	models.Vata:  "Consume in moderation with warming spices",
	models.Pitta: "Consume in smaller quantities, avoid during hot weather",
	models.Kapha: "Use warming spices and consume in smaller portions",
}

func prakritiRule(f models.Food, p models.Patient, e *evaluation) {
	d, ok := p.Prakriti.Dosha()
	if !ok {
		return
	}
	switch f.Ayurvedic.DoshaEffect.For(d) {
	case models.Decrease:
		e.adjust(20, fmt.Sprintf("Balances %s dosha", d.Title()))
	case models.Increase:
		e.adjust(-15, fmt.Sprintf("May increase %s", d.Title()))
		e.recommend(moderation[d])
	}
}

func vikritiRule(f models.Food, p models.Patient, e *evaluation) {
	d, ok := p.Vikriti.Dosha()
	if !ok {
		return
	}
	switch f.Ayurvedic.DoshaEffect.For(d) {
	case models.Decrease:
		e.adjust(15, fmt.Sprintf("Helps balance current %s imbalance", d))
	case models.Increase:
		e.adjust(-20, fmt.Sprintf("May worsen current %s imbalance", d))
		e.recommend("Avoid or consume very sparingly")
	}
}

func digestionRule(f models.Food, p models.Patient, e *evaluation) {
	switch {
	case p.BowelMovements == models.BowelConstipated && f.Ayurvedic.Digestibility == models.DifficultDigest:
		e.adjust(-10, "May be hard to digest with current digestive state")
	case p.BowelMovements == models.BowelLoose && f.Ayurvedic.Digestibility == models.EasyDigest:
		e.adjust(10, "Easy to digest, suitable for current digestive state")
	}
}

func activityRule(f models.Food, p models.Patient, e *evaluation) {
	switch {
	case p.ActivityLevel == models.Sedentary && f.Calories > 300:
		e.adjust(-5, "High calorie content may not suit sedentary lifestyle")
	case p.ActivityLevel == models.VeryActive && f.Calories < 100:
		e.adjust(-5, "May need higher calorie foods for active lifestyle")
	}
}

func dietRule(f models.Food, p models.Patient, e *evaluation) {
	if p.DietaryHabits.PlantBased() && f.Category == models.NonVegetarianCategory {
		e.exclude(fmt.Sprintf("Not suitable for %s diet", p.DietaryHabits))
	}
}

func allergyRule(f models.Food, p models.Patient, e *evaluation) {
	name := strings.ToLower(f.Name)
	category := strings.ToLower(f.Category)
	for _, allergy := range p.Allergies {
		a := strings.ToLower(strings.TrimSpace(allergy))
		if a == "" {
			continue
		}
		if strings.Contains(name, a) || strings.Contains(category, a) {
			e.exclude("Contains known allergen")
			return
		}
	}
}

func diabetesRule(f models.Food, p models.Patient, e *evaluation) {
	if hasCondition(p, "Diabetes Type 2") && f.Carbs > 30 {
		e.adjust(-10, "High carbohydrate content - monitor blood sugar")
		e.recommend("Consume in small portions and monitor glucose levels")
	}
}

func hypertensionRule(f models.Food, p models.Patient, e *evaluation) {
	if hasCondition(p, "Hypertension") && strings.Contains(strings.ToLower(f.Name), "salt") {
		e.adjust(-15, "High sodium may affect blood pressure")
		e.recommend("Use minimal quantities or avoid")
	}
}

func seasonRule(f models.Food, p models.Patient, e *evaluation) {
	season := p.CurrentSeason()
	if f.Ayurvedic.InSeason(season) {
		e.adjust(10, fmt.Sprintf("Suitable for %s season", season))
	}
}

func hasCondition(p models.Patient, condition string) bool {
	for _, c := range p.MedicalConditions {
		if strings.EqualFold(strings.TrimSpace(c), condition) {
			return true
		}
	}
	return false
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
