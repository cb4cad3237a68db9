// internal/symptom/entry.go
package symptom

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"mcp-ayur-diet/internal/models"
)

var ErrInvalidEntry = errors.New("invalid symptom entry")

// TrendWindow is the number of entries shown in a trend.
const TrendWindow = 7

var CommonSymptoms = []string{
	"Headache", "Fatigue", "Bloating", "Acidity", "Joint Pain", "Anxiety",
	"Insomnia", "Constipation", "Skin Issues", "Mood Swings", "Brain Fog", "Nausea",
}

var bowelMovements = map[string]bool{
	"normal": true, "constipated": true, "loose": true, "irregular": true,
}

// Draft is a symptom entry as submitted; zero values take defaults.
type Draft struct {
	Date            time.Time        `json:"date"`
	Symptoms        []models.Symptom `json:"symptoms"`
	Energy          int              `json:"energy"`
	Digestion       int              `json:"digestion"`
	Sleep           int              `json:"sleep"`
	Mood            int              `json:"mood"`
	Appetite        int              `json:"appetite"`
	StressLevel     int              `json:"stress_level"`
	BowelMovement   string           `json:"bowel_movement"`
	WaterIntake     float64          `json:"water_intake"`
	ExerciseMinutes int              `json:"exercise_minutes"`
	Notes           string           `json:"notes"`
}

// NewEntry fills defaults and validates a draft for patientID.
func NewEntry(patientID string, d Draft, id string, now time.Time) (*models.SymptomEntry, error) {
	if patientID == "" {
		return nil, fmt.Errorf("%w: patient id is required", ErrInvalidEntry)
	}

	e := &models.SymptomEntry{
		ID:              id,
		PatientID:       patientID,
		Date:            d.Date,
		Energy:          scale(d.Energy),
		Digestion:       scale(d.Digestion),
		Sleep:           scale(d.Sleep),
		Mood:            scale(d.Mood),
		Appetite:        scale(d.Appetite),
		StressLevel:     scale(d.StressLevel),
		BowelMovement:   d.BowelMovement,
		WaterIntake:     d.WaterIntake,
		ExerciseMinutes: d.ExerciseMinutes,
		Notes:           strings.TrimSpace(d.Notes),
	}
	if e.Date.IsZero() {
		e.Date = now
	}
	if e.BowelMovement == "" {
		e.BowelMovement = "normal"
	}
	if e.WaterIntake == 0 {
		e.WaterIntake = 2.5
	}
	if e.ExerciseMinutes == 0 {
		e.ExerciseMinutes = 30
	}

	e.Symptoms = make([]models.Symptom, 0, len(d.Symptoms))
	for _, s := range d.Symptoms {
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			continue
		}
		if s.Severity == 0 {
			s.Severity = 3
		}
		e.Symptoms = append(e.Symptoms, s)
	}

	if err := validate(e); err != nil {
		return nil, err
	}
	return e, nil
}

func scale(v int) int {
	if v == 0 {
		return 3
	}
	return v
}

func validate(e *models.SymptomEntry) error {
	for _, s := range e.Symptoms {
		if s.Severity < 1 || s.Severity > 5 {
			return fmt.Errorf("%w: %s severity %d outside 1-5", ErrInvalidEntry, s.Name, s.Severity)
		}
	}
	scales := []struct {
		name  string
		value int
	}{
		{"energy", e.Energy}, {"digestion", e.Digestion}, {"sleep", e.Sleep},
		{"mood", e.Mood}, {"appetite", e.Appetite}, {"stress_level", e.StressLevel},
	}
	for _, s := range scales {
		if s.value < 1 || s.value > 5 {
			return fmt.Errorf("%w: %s %d outside 1-5", ErrInvalidEntry, s.name, s.value)
		}
	}
	if !bowelMovements[e.BowelMovement] {
		return fmt.Errorf("%w: unknown bowel movement %q", ErrInvalidEntry, e.BowelMovement)
	}
	if e.WaterIntake < 0 || e.ExerciseMinutes < 0 {
		return fmt.Errorf("%w: water intake and exercise minutes cannot be negative", ErrInvalidEntry)
	}
	return nil
}

// Recent returns the newest n entries in chronological order.
func Recent(entries []models.SymptomEntry, n int) []models.SymptomEntry {
	if n <= 0 {
		n = TrendWindow
	}
	sorted := append([]models.SymptomEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	return sorted
}
