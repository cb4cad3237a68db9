// internal/models/dietchart.go
package models

import "time"

type ChartSource string

const (
	SourceAI       ChartSource = "ai"
	SourceFallback ChartSource = "fallback"
)

type MealSlot struct {
	Foods        []Food `json:"foods"`
	Instructions string `json:"instructions"`
}

type Meals struct {
	Breakfast  MealSlot `json:"breakfast"`
	MidMorning MealSlot `json:"mid_morning"`
	Lunch      MealSlot `json:"lunch"`
	Evening    MealSlot `json:"evening"`
	Dinner     MealSlot `json:"dinner"`
}

type DietChart struct {
	ID                  string      `json:"id"`
	PatientID           string      `json:"patient_id"`
	DoctorID            string      `json:"doctor_id,omitempty"`
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	Duration            int         `json:"duration"`
	Meals               Meals       `json:"meals"`
	TotalNutrition      Nutrition   `json:"total_nutrition"`
	AyurvedicGuidelines []string    `json:"ayurvedic_guidelines"`
	Restrictions        []string    `json:"restrictions"`
	Source              ChartSource `json:"source"`
	CreatedAt           time.Time   `json:"created_at"`
}
