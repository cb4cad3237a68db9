// internal/models/assessment.go
package models

import "time"

type QuestionCategory string

const (
	Physical   QuestionCategory = "physical"
	Mental     QuestionCategory = "mental"
	Behavioral QuestionCategory = "behavioral"
)

func (c QuestionCategory) Valid() bool {
	switch c {
	case Physical, Mental, Behavioral:
		return true
	}
	return false
}

type Option struct {
	Text   string `json:"text" yaml:"text"`
	Dosha  Dosha  `json:"dosha" yaml:"dosha"`
	Weight int    `json:"weight" yaml:"weight"`
}

type Question struct {
	ID       string           `json:"id" yaml:"id"`
	Category QuestionCategory `json:"category" yaml:"category"`
	Prompt   string           `json:"prompt" yaml:"prompt"`
	Options  []Option         `json:"options" yaml:"options"`
}

// AnswerSet maps question id to the chosen option index.
type AnswerSet map[string]int

type ConstitutionResult struct {
	Vata            int          `json:"vata"`
	Pitta           int          `json:"pitta"`
	Kapha           int          `json:"kapha"`
	Dominant        Constitution `json:"dominant"`
	Description     string       `json:"description"`
	Recommendations []string     `json:"recommendations"`
}

// Assessment is a stored constitution result for a patient.
type Assessment struct {
	ID        string             `json:"id"`
	PatientID string             `json:"patient_id"`
	Answers   AnswerSet          `json:"answers"`
	Result    ConstitutionResult `json:"result"`
	CreatedAt time.Time          `json:"created_at"`
}

type CompatibilityResult struct {
	FoodID          string   `json:"food_id"`
	PatientID       string   `json:"patient_id"`
	Score           int      `json:"score"`
	Reasons         []string `json:"reasons"`
	Recommendations []string `json:"recommendations"`
}
