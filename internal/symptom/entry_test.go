package symptom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-ayur-diet/internal/models"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewEntryDefaults(t *testing.T) {
	e, err := NewEntry("p1", Draft{
		Symptoms: []models.Symptom{{Name: " Headache "}, {Name: ""}, {Name: "Fatigue", Severity: 2}},
	}, "e1", now)
	require.NoError(t, err)

	assert.Equal(t, "e1", e.ID)
	assert.Equal(t, now, e.Date)
	assert.Equal(t, 3, e.Energy)
	assert.Equal(t, 3, e.StressLevel)
	assert.Equal(t, "normal", e.BowelMovement)
	assert.Equal(t, 2.5, e.WaterIntake)
	assert.Equal(t, 30, e.ExerciseMinutes)
	assert.Equal(t, []models.Symptom{
		{Name: "Headache", Severity: 3},
		{Name: "Fatigue", Severity: 2},
	}, e.Symptoms)
}

func TestNewEntryValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
	}{
		{"severity too high", Draft{Symptoms: []models.Symptom{{Name: "Nausea", Severity: 6}}}},
		{"severity negative", Draft{Symptoms: []models.Symptom{{Name: "Nausea", Severity: -1}}}},
		{"energy out of range", Draft{Energy: 9}},
		{"unknown bowel movement", Draft{BowelMovement: "sideways"}},
		{"negative water", Draft{WaterIntake: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEntry("p1", tt.draft, "e1", now)
			assert.ErrorIs(t, err, ErrInvalidEntry)
		})
	}

	_, err := NewEntry("", Draft{}, "e1", now)
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestRecent(t *testing.T) {
	var entries []models.SymptomEntry
	for i := 0; i < 10; i++ {
		entries = append(entries, models.SymptomEntry{
			ID:   string(rune('a' + i)),
			Date: now.AddDate(0, 0, -i),
		})
	}

	got := Recent(entries, 0)
	require.Len(t, got, TrendWindow)
	assert.Equal(t, "g", got[0].ID, "oldest of the window first")
	assert.Equal(t, "a", got[len(got)-1].ID, "newest last")

	got = Recent(entries[:2], 5)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", entries[0].ID, "input is not reordered")
}
