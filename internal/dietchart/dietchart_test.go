package dietchart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-ayur-diet/internal/catalog"
	"mcp-ayur-diet/internal/models"
)

func testFoods(t *testing.T) []models.Food {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c.Foods
}

func testRequest() Request {
	return Request{
		Patient: models.Patient{
			ID:                "p1",
			DoctorID:          "default_doctor",
			Name:              "Asha",
			Age:               34,
			Gender:            models.Female,
			Weight:            58,
			Height:            162,
			ActivityLevel:     models.Moderate,
			DietaryHabits:     models.Vegetarian,
			SleepHours:        7,
			WaterIntake:       2.5,
			BowelMovements:    models.BowelRegular,
			MealFrequency:     3,
			Prakriti:          models.ConstitutionVata,
			Vikriti:           models.VikritiBalanced,
			MedicalConditions: []string{"Hypertension"},
			Allergies:         []string{"almond"},
		},
		Preferences:  []string{"warm meals"},
		Restrictions: []string{"no cold drinks"},
		Goals:        []string{"better digestion"},
	}
}

type stubText struct {
	out    string
	err    error
	prompt string
}

func (s *stubText) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.out, s.err
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(testRequest(), []string{"Basmati Rice", "Ghee"})

	assert.Contains(t, p, "7-day diet plan")
	assert.Contains(t, p, "- Age: 34, Gender: female")
	assert.Contains(t, p, "- Prakriti (Constitution): vata")
	assert.Contains(t, p, "- Medical Conditions: Hypertension")
	assert.Contains(t, p, "PREFERENCES: warm meals")
	assert.Contains(t, p, "RESTRICTIONS: no cold drinks")
	assert.Contains(t, p, "AVAILABLE FOODS: Basmati Rice, Ghee")
	assert.Contains(t, p, `"mid_morning"`)

	req := testRequest()
	req.Goals = nil
	assert.Contains(t, BuildPrompt(req, nil), "GOALS: none")
}

func TestFallback(t *testing.T) {
	foods := testFoods(t)
	chart := Fallback(testRequest(), foods)

	assert.Equal(t, "Personalized Diet Plan - 7 Days", chart.Title)
	assert.Equal(t, 7, chart.Duration)
	assert.Equal(t, models.SourceFallback, chart.Source)
	assert.Equal(t, "p1", chart.PatientID)
	assert.Equal(t, []string{"no cold drinks"}, chart.Restrictions)
	assert.Equal(t, fallbackNutrition, chart.TotalNutrition)
	assert.Len(t, chart.AyurvedicGuidelines, 5)
	assert.Empty(t, chart.ID)
	assert.True(t, chart.CreatedAt.IsZero())

	slots := []models.MealSlot{chart.Meals.Breakfast, chart.Meals.MidMorning, chart.Meals.Lunch, chart.Meals.Evening, chart.Meals.Dinner}
	for i, s := range slots {
		assert.Len(t, s.Foods, slotSizes[i])
		assert.Equal(t, fallbackInstructions[i], s.Instructions)
		for _, f := range s.Foods {
			assert.NotEqual(t, models.NonVegetarianCategory, f.Category)
			assert.NotEqual(t, "almonds", f.ID)
		}
	}

	assert.Equal(t, chart, Fallback(testRequest(), foods))
}

func TestFallbackShortCatalog(t *testing.T) {
	foods := testFoods(t)[:4]
	chart := Fallback(Request{Patient: testRequest().Patient, Duration: 3}, foods)

	assert.Equal(t, "Personalized Diet Plan - 3 Days", chart.Title)
	assert.Len(t, chart.Meals.Breakfast.Foods, 3)
	assert.Len(t, chart.Meals.MidMorning.Foods, 1)
	assert.NotNil(t, chart.Meals.Dinner.Foods)
	assert.Empty(t, chart.Meals.Dinner.Foods)
	assert.NotNil(t, chart.Restrictions)
}

const modelOutput = "Here is the plan:\n```json\n" + `{
  "description": "Warm, grounding meals for vata.",
  "meals": {
    "breakfast": {"foods": ["Oats", "ghee", "Unicorn Steak"], "instructions": "Eat warm."},
    "mid_morning": {"foods": ["Banana"]},
    "lunch": {"foods": ["Basmati Rice", "Moong Dal"], "instructions": "Main meal."},
    "evening": {"foods": []},
    "dinner": {"foods": ["moong-dal"], "instructions": "Light."}
  },
  "total_nutrition": {"calories": 1900, "protein": 60, "carbs": 240, "fat": 55, "fiber": 28},
  "ayurvedic_guidelines": ["Eat at regular times", " "]
}` + "\n```"

func TestParse(t *testing.T) {
	chart, err := Parse(modelOutput, testRequest(), testFoods(t))
	require.NoError(t, err)

	assert.Equal(t, models.SourceAI, chart.Source)
	assert.Equal(t, "AI Generated Diet Plan - 7 Days", chart.Title)
	assert.Equal(t, "Warm, grounding meals for vata.", chart.Description)

	names := func(s models.MealSlot) []string {
		out := []string{}
		for _, f := range s.Foods {
			out = append(out, f.ID)
		}
		return out
	}
	assert.Equal(t, []string{"oats", "ghee"}, names(chart.Meals.Breakfast))
	assert.Equal(t, "Eat warm.", chart.Meals.Breakfast.Instructions)
	assert.Equal(t, aiInstructions[1], chart.Meals.MidMorning.Instructions)
	assert.Equal(t, []string{"rice", "moong-dal"}, names(chart.Meals.Lunch))
	assert.Empty(t, chart.Meals.Evening.Foods)
	assert.Equal(t, []string{"moong-dal"}, names(chart.Meals.Dinner))
	assert.Equal(t, 1900.0, chart.TotalNutrition.Calories)
	assert.Equal(t, []string{"Eat at regular times"}, chart.AyurvedicGuidelines)
}

func TestParseUnstructured(t *testing.T) {
	foods := testFoods(t)
	for _, text := range []string{
		"Eat more ghee.",
		"{not json}",
		`{"meals": {"lunch": {"foods": ["Unicorn Steak"]}}}`,
	} {
		_, err := Parse(text, testRequest(), foods)
		assert.ErrorIs(t, err, ErrUnstructuredResponse, text)
	}
}

func TestParseDropsExcludedFoods(t *testing.T) {
	// Vegetarian patient allergic to almonds.
	out := `{"meals": {
  "breakfast": {"foods": ["Almonds", "Oats"]},
  "lunch": {"foods": ["Chicken Soup", "Grilled Fish", "Basmati Rice"]}
}}`
	chart, err := Parse(out, testRequest(), testFoods(t))
	require.NoError(t, err)

	require.Len(t, chart.Meals.Breakfast.Foods, 1)
	assert.Equal(t, "oats", chart.Meals.Breakfast.Foods[0].ID)
	require.Len(t, chart.Meals.Lunch.Foods, 1)
	assert.Equal(t, "rice", chart.Meals.Lunch.Foods[0].ID)

	_, err = Parse(`{"meals": {"dinner": {"foods": ["Chicken Soup", "almonds"]}}}`, testRequest(), testFoods(t))
	assert.ErrorIs(t, err, ErrUnstructuredResponse)

	req := testRequest()
	req.Patient.DietaryHabits = models.NonVegetarian
	req.Patient.Allergies = nil
	chart, err = Parse(out, req, testFoods(t))
	require.NoError(t, err)
	assert.Len(t, chart.Meals.Breakfast.Foods, 2)
	assert.Len(t, chart.Meals.Lunch.Foods, 3)
}

func fixedGenerator(t *testing.T, text TextGenerator) *Generator {
	foods := testFoods(t)
	g := NewGenerator(text, func() []models.Food { return foods }, nil, time.Second)
	g.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	g.newID = func() string { return "chart-1" }
	return g
}

func TestGenerateUsesModel(t *testing.T) {
	stub := &stubText{out: modelOutput}
	chart := fixedGenerator(t, stub).Generate(context.Background(), testRequest())

	assert.Equal(t, models.SourceAI, chart.Source)
	assert.Equal(t, "chart-1", chart.ID)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), chart.CreatedAt)
	assert.Contains(t, stub.prompt, "Basmati Rice")
}

func TestGenerateFallsBack(t *testing.T) {
	tests := []struct {
		name string
		text TextGenerator
	}{
		{"no generator", nil},
		{"service error", &stubText{err: errors.New("quota exceeded")}},
		{"unstructured", &stubText{out: "I recommend warm soups."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart := fixedGenerator(t, tt.text).Generate(context.Background(), testRequest())
			require.NotNil(t, chart)
			assert.Equal(t, models.SourceFallback, chart.Source)
			assert.Equal(t, "chart-1", chart.ID)
			assert.False(t, chart.CreatedAt.IsZero())
		})
	}
}

func TestFromModelWrapsErrors(t *testing.T) {
	g := fixedGenerator(t, &stubText{out: "no json here"})
	_, err := g.fromModel(context.Background(), testRequest(), testFoods(t))
	assert.ErrorIs(t, err, ErrExternalService)
	assert.ErrorIs(t, err, ErrUnstructuredResponse)
}
