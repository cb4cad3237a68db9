package patient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-ayur-diet/internal/models"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func validForm() Form {
	f := NewForm()
	f.Name = " Asha "
	f.Email = "asha@example.com"
	f.Phone = "555-0100"
	return f
}

func TestValidateStep(t *testing.T) {
	f := NewForm()
	err := f.ValidateStep(1)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "name, email, phone")

	f = validForm()
	assert.NoError(t, f.ValidateStep(1))

	f.Age = 0
	assert.ErrorIs(t, f.ValidateStep(1), ErrValidation)

	f = validForm()
	f.Height = 0
	assert.ErrorIs(t, f.ValidateStep(2), ErrValidation)

	for step := 3; step <= Steps; step++ {
		assert.NoError(t, NewForm().ValidateStep(step))
	}
}

func TestNew(t *testing.T) {
	f := validForm()
	f.CurrentProblems = []string{"Hypertension", " Hypertension", "", "Diabetes Type 2"}
	f.Allergies = []string{"peanut"}

	p, err := New(f, "p1", now)
	require.NoError(t, err)

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Asha", p.Name)
	assert.Equal(t, DefaultDoctorID, p.DoctorID)
	assert.Equal(t, models.ConstitutionVata, p.Prakriti)
	assert.Equal(t, models.VikritiBalanced, p.Vikriti)
	assert.Equal(t, []string{"Hypertension", "Diabetes Type 2"}, p.MedicalConditions)
	assert.Equal(t, []string{"peanut"}, p.Allergies)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, models.BowelRegular, p.BowelMovements)
}

func TestNewKnownConstitution(t *testing.T) {
	f := validForm()
	f.ConstitutionKnown = true
	f.KnownConstitution = models.ConstitutionPittaKapha

	p, err := New(f, "p1", now)
	require.NoError(t, err)
	assert.Equal(t, models.ConstitutionPittaKapha, p.Prakriti)

	f.KnownConstitution = "unknown"
	p, err = New(f, "p1", now)
	require.NoError(t, err)
	assert.Equal(t, models.ConstitutionVata, p.Prakriti)
}

func TestNewRejectsInvalid(t *testing.T) {
	f := validForm()
	f.DietaryHabits = "carnivore"
	_, err := New(f, "p1", now)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = New(NewForm(), "p1", now)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdate(t *testing.T) {
	p, err := New(validForm(), "p1", now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	vikriti := models.VikritiPitta
	season := models.Winter
	weight := 64.5
	require.NoError(t, Update(p, Patch{
		Vikriti:   &vikriti,
		Season:    &season,
		Weight:    &weight,
		Allergies: []string{"dairy", "dairy"},
	}, later))

	assert.Equal(t, models.VikritiPitta, p.Vikriti)
	assert.Equal(t, models.Winter, p.Season)
	assert.Equal(t, 64.5, p.Weight)
	assert.Equal(t, []string{"dairy"}, p.Allergies)
	assert.Equal(t, later, p.UpdatedAt)
	assert.Equal(t, now, p.CreatedAt)
}

func TestUpdateInvalidLeavesPatient(t *testing.T) {
	p, err := New(validForm(), "p1", now)
	require.NoError(t, err)
	before := *p

	bad := models.Vikriti("ether")
	name := "New"
	err = Update(p, Patch{Name: &name, Vikriti: &bad}, now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, before, *p)
}

func TestApplyAssessment(t *testing.T) {
	p, err := New(validForm(), "p1", now)
	require.NoError(t, err)

	later := now.Add(time.Minute)
	ApplyAssessment(p, models.ConstitutionResult{Dominant: models.ConstitutionKapha}, later)
	assert.Equal(t, models.ConstitutionKapha, p.Prakriti)
	assert.Equal(t, later, p.UpdatedAt)
}
