package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-ayur-diet/internal/models"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Questions, 10)
	assert.GreaterOrEqual(t, len(c.Foods), 20)

	rice, ok := c.Food("rice")
	require.True(t, ok)
	assert.Equal(t, "Grains", rice.Category)
	assert.Equal(t, models.Decrease, rice.Ayurvedic.DoshaEffect.For(models.Vata))

	_, ok = c.Food("unknown")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	t.Run("by name", func(t *testing.T) {
		got := c.Search("GINGER")
		require.Len(t, got, 1)
		assert.Equal(t, "ginger", got[0].ID)
	})

	t.Run("by category", func(t *testing.T) {
		got := c.Search("non-veg")
		require.NotEmpty(t, got)
		for _, f := range got {
			assert.Equal(t, models.NonVegetarianCategory, f.Category)
		}
	})

	t.Run("empty term returns all", func(t *testing.T) {
		assert.Len(t, c.Search("  "), len(c.Foods))
	})
}

func TestParseFoodsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "[]"},
		{"malformed", "- id: [unterminated"},
		{"missing id", `
- name: Thing
  serving_size: 1
  ayurvedic_properties: {virya: hot, digestibility: easy, dosha_effect: {vata: neutral, pitta: neutral, kapha: neutral}}
`},
		{"bad effect", `
- id: a
  name: A
  serving_size: 1
  ayurvedic_properties: {virya: hot, digestibility: easy, dosha_effect: {vata: worsen, pitta: neutral, kapha: neutral}}
`},
		{"missing effect", `
- id: a
  name: A
  serving_size: 1
  ayurvedic_properties: {virya: hot, digestibility: easy, dosha_effect: {vata: neutral}}
`},
		{"bad rasa", `
- id: a
  name: A
  serving_size: 1
  ayurvedic_properties: {rasa: [umami], virya: hot, digestibility: easy, dosha_effect: {vata: neutral, pitta: neutral, kapha: neutral}}
`},
		{"duplicate id", `
- id: a
  name: A
  serving_size: 1
  ayurvedic_properties: {virya: hot, digestibility: easy, dosha_effect: {vata: neutral, pitta: neutral, kapha: neutral}}
- id: a
  name: B
  serving_size: 1
  ayurvedic_properties: {virya: hot, digestibility: easy, dosha_effect: {vata: neutral, pitta: neutral, kapha: neutral}}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFoods([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestParseQuestionsRejectsInvalid(t *testing.T) {
	twoOptions := `
- id: "1"
  category: physical
  prompt: q
  options:
    - {text: a, dosha: vata, weight: 2}
    - {text: b, dosha: pitta, weight: 2}
`
	_, err := ParseQuestions([]byte(twoOptions))
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	badDosha := `
- id: "1"
  category: physical
  prompt: q
  options:
    - {text: a, dosha: vata, weight: 2}
    - {text: b, dosha: pitta, weight: 2}
    - {text: c, dosha: ether, weight: 2}
`
	_, err = ParseQuestions([]byte(badDosha))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestStoreSwap(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	s := NewStore(c)
	assert.Same(t, c, s.Current())

	next := c.WithFoods(c.Foods[:1])
	s.Swap(next)
	assert.Len(t, s.Current().Foods, 1)
	assert.Len(t, s.Current().Questions, len(c.Questions))
}
