// internal/patient/registration.go
package patient

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mcp-ayur-diet/internal/models"
)

var ErrValidation = errors.New("validation failed")

// DefaultDoctorID is assigned to self-registered patients.
const DefaultDoctorID = "default_doctor"

// Steps is the number of registration wizard steps.
const Steps = 6

// Form carries everything the registration wizard collects.
type Form struct {
	// Step 1: personal details
	Name             string        `json:"name"`
	Age              int           `json:"age"`
	Gender           models.Gender `json:"gender"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	Address          string        `json:"address"`
	EmergencyContact string        `json:"emergency_contact"`
	EmergencyPhone   string        `json:"emergency_phone"`

	// Step 2: body metrics
	Weight     float64 `json:"weight"`
	Height     float64 `json:"height"`
	BloodGroup string  `json:"blood_group"`

	// Step 3: medical history
	CurrentProblems    []string `json:"current_problems"`
	MedicalHistory     []string `json:"medical_history"`
	CurrentMedications []string `json:"current_medications"`
	Allergies          []string `json:"allergies"`
	PreviousSurgeries  []string `json:"previous_surgeries"`

	// Step 4: lifestyle
	DietaryHabits      models.DietaryHabit  `json:"dietary_habits"`
	ActivityLevel      models.ActivityLevel `json:"activity_level"`
	SleepHours         float64              `json:"sleep_hours"`
	WaterIntake        float64              `json:"water_intake"`
	SmokingHabits      string               `json:"smoking_habits"`
	AlcoholConsumption string               `json:"alcohol_consumption"`
	StressLevel        int                  `json:"stress_level"`

	// Step 5: Ayurvedic history
	PreviousAyurvedicTreatment bool                `json:"previous_ayurvedic_treatment"`
	AyurvedicTreatmentDetails  string              `json:"ayurvedic_treatment_details"`
	ConstitutionKnown          bool                `json:"constitution_known"`
	KnownConstitution          models.Constitution `json:"known_constitution"`
	BowelMovements             models.BowelPattern `json:"bowel_movements"`
	DigestiveIssues            []string            `json:"digestive_issues"`
	MealFrequency              int                 `json:"meal_frequency"`

	// Step 6: goals and preferences
	HealthGoals     []string `json:"health_goals"`
	FoodPreferences []string `json:"food_preferences"`
	AvoidFoods      []string `json:"avoid_foods"`
}

// NewForm returns a form populated with the wizard's initial values.
func NewForm() Form {
	return Form{
		Age:                25,
		Gender:             models.Male,
		Weight:             60,
		Height:             165,
		DietaryHabits:      models.Vegetarian,
		ActivityLevel:      models.Moderate,
		SleepHours:         7,
		WaterIntake:        2.5,
		SmokingHabits:      "never",
		AlcoholConsumption: "never",
		StressLevel:        3,
		BowelMovements:     models.BowelRegular,
		MealFrequency:      3,
	}
}

// ValidateStep checks the required fields of one wizard step.
func (f Form) ValidateStep(step int) error {
	switch step {
	case 1:
		var missing []string
		if strings.TrimSpace(f.Name) == "" {
			missing = append(missing, "name")
		}
		if strings.TrimSpace(f.Email) == "" {
			missing = append(missing, "email")
		}
		if strings.TrimSpace(f.Phone) == "" {
			missing = append(missing, "phone")
		}
		if f.Age <= 0 {
			missing = append(missing, "age")
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: step 1 requires %s", ErrValidation, strings.Join(missing, ", "))
		}
	case 2:
		if f.Weight <= 0 || f.Height <= 0 {
			return fmt.Errorf("%w: step 2 requires positive weight and height", ErrValidation)
		}
	}
	return nil
}

// Validate runs every step plus enum checks on the lifestyle fields.
func (f Form) Validate() error {
	for step := 1; step <= Steps; step++ {
		if err := f.ValidateStep(step); err != nil {
			return err
		}
	}
	if f.DietaryHabits != "" && !f.DietaryHabits.Valid() {
		return fmt.Errorf("%w: unknown dietary habit %q", ErrValidation, f.DietaryHabits)
	}
	if f.ActivityLevel != "" && !f.ActivityLevel.Valid() {
		return fmt.Errorf("%w: unknown activity level %q", ErrValidation, f.ActivityLevel)
	}
	if f.BowelMovements != "" && !f.BowelMovements.Valid() {
		return fmt.Errorf("%w: unknown bowel pattern %q", ErrValidation, f.BowelMovements)
	}
	return nil
}

// New builds a patient from a validated form.
func New(f Form, id string, now time.Time) (*models.Patient, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	prakriti := models.ConstitutionVata
	if f.ConstitutionKnown && f.KnownConstitution.Valid() {
		prakriti = f.KnownConstitution
	}

	p := &models.Patient{
		ID:                id,
		DoctorID:          DefaultDoctorID,
		Name:              strings.TrimSpace(f.Name),
		Email:             strings.TrimSpace(f.Email),
		Phone:             strings.TrimSpace(f.Phone),
		Age:               f.Age,
		Gender:            f.Gender,
		Weight:            f.Weight,
		Height:            f.Height,
		ActivityLevel:     orDefault(f.ActivityLevel, models.Moderate),
		DietaryHabits:     orDefault(f.DietaryHabits, models.Vegetarian),
		SleepHours:        f.SleepHours,
		WaterIntake:       f.WaterIntake,
		BowelMovements:    orDefault(f.BowelMovements, models.BowelRegular),
		MealFrequency:     f.MealFrequency,
		Prakriti:          prakriti,
		Vikriti:           models.VikritiBalanced,
		MedicalConditions: CleanList(f.CurrentProblems),
		Allergies:         CleanList(f.Allergies),
		HealthGoals:       CleanList(f.HealthGoals),
		FoodPreferences:   CleanList(f.FoodPreferences),
		AvoidFoods:        CleanList(f.AvoidFoods),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return p, nil
}

// CleanList trims items and drops blanks and duplicates, keeping first-seen order.
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func orDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}
