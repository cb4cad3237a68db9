// internal/patient/edit.go
package patient

import (
	"fmt"
	"time"

	"mcp-ayur-diet/internal/models"
)

// Patch lists profile fields to change; nil fields are left alone.
type Patch struct {
	Name              *string               `json:"name,omitempty"`
	Age               *int                  `json:"age,omitempty"`
	Weight            *float64              `json:"weight,omitempty"`
	Height            *float64              `json:"height,omitempty"`
	ActivityLevel     *models.ActivityLevel `json:"activity_level,omitempty"`
	DietaryHabits     *models.DietaryHabit  `json:"dietary_habits,omitempty"`
	SleepHours        *float64              `json:"sleep_hours,omitempty"`
	WaterIntake       *float64              `json:"water_intake,omitempty"`
	BowelMovements    *models.BowelPattern  `json:"bowel_movements,omitempty"`
	Prakriti          *models.Constitution  `json:"prakriti,omitempty"`
	Vikriti           *models.Vikriti       `json:"vikriti,omitempty"`
	Season            *models.Season        `json:"season,omitempty"`
	MedicalConditions []string              `json:"medical_conditions,omitempty"`
	Allergies         []string              `json:"allergies,omitempty"`
}

// Update applies patch to p. p is left untouched when the patch is invalid.
func Update(p *models.Patient, patch Patch, now time.Time) error {
	if err := patch.validate(); err != nil {
		return err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Age != nil {
		p.Age = *patch.Age
	}
	if patch.Weight != nil {
		p.Weight = *patch.Weight
	}
	if patch.Height != nil {
		p.Height = *patch.Height
	}
	if patch.ActivityLevel != nil {
		p.ActivityLevel = *patch.ActivityLevel
	}
	if patch.DietaryHabits != nil {
		p.DietaryHabits = *patch.DietaryHabits
	}
	if patch.SleepHours != nil {
		p.SleepHours = *patch.SleepHours
	}
	if patch.WaterIntake != nil {
		p.WaterIntake = *patch.WaterIntake
	}
	if patch.BowelMovements != nil {
		p.BowelMovements = *patch.BowelMovements
	}
	if patch.Prakriti != nil {
		p.Prakriti = *patch.Prakriti
	}
	if patch.Vikriti != nil {
		p.Vikriti = *patch.Vikriti
	}
	if patch.Season != nil {
		p.Season = *patch.Season
	}
	if patch.MedicalConditions != nil {
		p.MedicalConditions = CleanList(patch.MedicalConditions)
	}
	if patch.Allergies != nil {
		p.Allergies = CleanList(patch.Allergies)
	}
	p.UpdatedAt = now
	return nil
}

func (patch Patch) validate() error {
	switch {
	case patch.Name != nil && *patch.Name == "":
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	case patch.Age != nil && *patch.Age <= 0:
		return fmt.Errorf("%w: age must be positive", ErrValidation)
	case patch.Weight != nil && *patch.Weight <= 0:
		return fmt.Errorf("%w: weight must be positive", ErrValidation)
	case patch.Height != nil && *patch.Height <= 0:
		return fmt.Errorf("%w: height must be positive", ErrValidation)
	case patch.ActivityLevel != nil && !patch.ActivityLevel.Valid():
		return fmt.Errorf("%w: unknown activity level %q", ErrValidation, *patch.ActivityLevel)
	case patch.DietaryHabits != nil && !patch.DietaryHabits.Valid():
		return fmt.Errorf("%w: unknown dietary habit %q", ErrValidation, *patch.DietaryHabits)
	case patch.BowelMovements != nil && !patch.BowelMovements.Valid():
		return fmt.Errorf("%w: unknown bowel pattern %q", ErrValidation, *patch.BowelMovements)
	case patch.Prakriti != nil && !patch.Prakriti.Valid():
		return fmt.Errorf("%w: unknown prakriti %q", ErrValidation, *patch.Prakriti)
	case patch.Vikriti != nil && !patch.Vikriti.Valid():
		return fmt.Errorf("%w: unknown vikriti %q", ErrValidation, *patch.Vikriti)
	case patch.Season != nil && *patch.Season != "" && !patch.Season.Valid():
		return fmt.Errorf("%w: unknown season %q", ErrValidation, *patch.Season)
	}
	return nil
}

// ApplyAssessment records a constitution result as the patient's prakriti.
func ApplyAssessment(p *models.Patient, result models.ConstitutionResult, now time.Time) {
	p.Prakriti = result.Dominant
	p.UpdatedAt = now
}
