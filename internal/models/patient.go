// internal/models/patient.go
package models

import "time"

// Constitution is a prakriti classification: a single dosha, a dual pair or tridosha.
type Constitution string

const (
	ConstitutionVata       Constitution = "vata"
	ConstitutionPitta      Constitution = "pitta"
	ConstitutionKapha      Constitution = "kapha"
	ConstitutionVataPitta  Constitution = "vata_pitta"
	ConstitutionPittaKapha Constitution = "pitta_kapha"
	ConstitutionVataKapha  Constitution = "vata_kapha"
	ConstitutionTridosha   Constitution = "tridosha"
)

func (c Constitution) Valid() bool {
	switch c {
	case ConstitutionVata, ConstitutionPitta, ConstitutionKapha,
		ConstitutionVataPitta, ConstitutionPittaKapha, ConstitutionVataKapha,
		ConstitutionTridosha:
		return true
	}
	return false
}

// Dosha returns the single dosha of a single-dosha constitution.
func (c Constitution) Dosha() (Dosha, bool) {
	switch c {
	case ConstitutionVata:
		return Vata, true
	case ConstitutionPitta:
		return Pitta, true
	case ConstitutionKapha:
		return Kapha, true
	}
	return "", false
}

// Vikriti is the current imbalance: a dosha or balanced.
type Vikriti string

const (
	VikritiBalanced Vikriti = "balanced"
	VikritiVata     Vikriti = "vata"
	VikritiPitta    Vikriti = "pitta"
	VikritiKapha    Vikriti = "kapha"
)

func (v Vikriti) Valid() bool {
	switch v {
	case VikritiBalanced, VikritiVata, VikritiPitta, VikritiKapha:
		return true
	}
	return false
}

func (v Vikriti) Dosha() (Dosha, bool) {
	d := Dosha(v)
	return d, d.Valid()
}

type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

func (a ActivityLevel) Valid() bool {
	switch a {
	case Sedentary, Light, Moderate, Active, VeryActive:
		return true
	}
	return false
}

type DietaryHabit string

const (
	Vegetarian    DietaryHabit = "vegetarian"
	NonVegetarian DietaryHabit = "non_vegetarian"
	Vegan         DietaryHabit = "vegan"
	Jain          DietaryHabit = "jain"
)

func (d DietaryHabit) Valid() bool {
	switch d {
	case Vegetarian, NonVegetarian, Vegan, Jain:
		return true
	}
	return false
}

// PlantBased reports whether the diet excludes non-vegetarian foods.
func (d DietaryHabit) PlantBased() bool {
	return d == Vegetarian || d == Vegan || d == Jain
}

type BowelPattern string

const (
	BowelRegular     BowelPattern = "regular"
	BowelIrregular   BowelPattern = "irregular"
	BowelConstipated BowelPattern = "constipated"
	BowelLoose       BowelPattern = "loose"
)

func (b BowelPattern) Valid() bool {
	switch b {
	case BowelRegular, BowelIrregular, BowelConstipated, BowelLoose:
		return true
	}
	return false
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

type Patient struct {
	ID                string        `json:"id" yaml:"id"`
	DoctorID          string        `json:"doctor_id,omitempty" yaml:"doctor_id,omitempty"`
	Name              string        `json:"name" yaml:"name"`
	Email             string        `json:"email,omitempty" yaml:"email,omitempty"`
	Phone             string        `json:"phone,omitempty" yaml:"phone,omitempty"`
	Age               int           `json:"age" yaml:"age"`
	Gender            Gender        `json:"gender,omitempty" yaml:"gender,omitempty"`
	Weight            float64       `json:"weight" yaml:"weight"`
	Height            float64       `json:"height" yaml:"height"`
	ActivityLevel     ActivityLevel `json:"activity_level" yaml:"activity_level"`
	DietaryHabits     DietaryHabit  `json:"dietary_habits" yaml:"dietary_habits"`
	SleepHours        float64       `json:"sleep_hours" yaml:"sleep_hours"`
	WaterIntake       float64       `json:"water_intake" yaml:"water_intake"`
	BowelMovements    BowelPattern  `json:"bowel_movements" yaml:"bowel_movements"`
	MealFrequency     int           `json:"meal_frequency,omitempty" yaml:"meal_frequency,omitempty"`
	Prakriti          Constitution  `json:"prakriti" yaml:"prakriti"`
	Vikriti           Vikriti       `json:"vikriti" yaml:"vikriti"`
	Season            Season        `json:"season,omitempty" yaml:"season,omitempty"`
	MedicalConditions []string      `json:"medical_conditions" yaml:"medical_conditions"`
	Allergies         []string      `json:"allergies" yaml:"allergies"`
	HealthGoals       []string      `json:"health_goals,omitempty" yaml:"health_goals,omitempty"`
	FoodPreferences   []string      `json:"food_preferences,omitempty" yaml:"food_preferences,omitempty"`
	AvoidFoods        []string      `json:"avoid_foods,omitempty" yaml:"avoid_foods,omitempty"`
	CreatedAt         time.Time     `json:"created_at" yaml:"created_at,omitempty"`
	UpdatedAt         time.Time     `json:"updated_at" yaml:"updated_at,omitempty"`
}

// CurrentSeason returns the patient's season, defaulting to summer.
func (p Patient) CurrentSeason() Season {
	if p.Season == "" {
		return Summer
	}
	return p.Season
}
