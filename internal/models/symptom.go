// internal/models/symptom.go
package models

import "time"

type Symptom struct {
	Name     string `json:"name"`
	Severity int    `json:"severity"` // 1-5
	Notes    string `json:"notes,omitempty"`
}

type SymptomEntry struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patient_id"`
	Date            time.Time `json:"date"`
	Symptoms        []Symptom `json:"symptoms"`
	Energy          int       `json:"energy"`
	Digestion       int       `json:"digestion"`
	Sleep           int       `json:"sleep"`
	Mood            int       `json:"mood"`
	Appetite        int       `json:"appetite"`
	StressLevel     int       `json:"stress_level"`
	BowelMovement   string    `json:"bowel_movement"`
	WaterIntake     float64   `json:"water_intake"`
	ExerciseMinutes int       `json:"exercise_minutes"`
	Notes           string    `json:"notes,omitempty"`
}
