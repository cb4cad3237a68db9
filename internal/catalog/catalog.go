// internal/catalog/catalog.go
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mcp-ayur-diet/internal/models"
)

//go:embed data/*.yaml
var dataFS embed.FS

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is read-only reference data shared by the scorers.
type Catalog struct {
	Foods     []models.Food
	Questions []models.Question
	byID      map[string]int
}

// New indexes foods and questions. Callers must not mutate the slices afterwards.
func New(foods []models.Food, questions []models.Question) *Catalog {
	byID := make(map[string]int, len(foods))
	for i, f := range foods {
		byID[f.ID] = i
	}
	return &Catalog{Foods: foods, Questions: questions, byID: byID}
}

// Default loads the embedded foods and questionnaire.
func Default() (*Catalog, error) {
	foodData, err := dataFS.ReadFile("data/foods.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded foods: %w", err)
	}
	foods, err := ParseFoods(foodData)
	if err != nil {
		return nil, err
	}

	questionData, err := dataFS.ReadFile("data/questions.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded questions: %w", err)
	}
	questions, err := ParseQuestions(questionData)
	if err != nil {
		return nil, err
	}

	return New(foods, questions), nil
}

// LoadFoods reads and validates a foods file.
func LoadFoods(path string) ([]models.Food, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read foods file: %w", err)
	}
	return ParseFoods(data)
}

func (c *Catalog) Food(id string) (models.Food, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Food{}, false
	}
	return c.Foods[i], true
}

// Search matches term case-insensitively against food name or category.
// An empty term returns every food.
func (c *Catalog) Search(term string) []models.Food {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]models.Food(nil), c.Foods...)
	}

	var out []models.Food
	for _, f := range c.Foods {
		if strings.Contains(strings.ToLower(f.Name), term) ||
			strings.Contains(strings.ToLower(f.Category), term) {
			out = append(out, f)
		}
	}
	return out
}

// WithFoods returns a copy of c with its foods replaced.
func (c *Catalog) WithFoods(foods []models.Food) *Catalog {
	return New(foods, c.Questions)
}

func ParseFoods(data []byte) ([]models.Food, error) {
	var foods []models.Food
	if err := yaml.Unmarshal(data, &foods); err != nil {
		return nil, fmt.Errorf("%w: parse foods: %v", ErrInvalidCatalog, err)
	}
	if len(foods) == 0 {
		return nil, fmt.Errorf("%w: no foods", ErrInvalidCatalog)
	}

	seen := make(map[string]bool, len(foods))
	for i, f := range foods {
		if f.ID == "" || f.Name == "" {
			return nil, fmt.Errorf("%w: food %d is missing id or name", ErrInvalidCatalog, i)
		}
		if seen[f.ID] {
			return nil, fmt.Errorf("%w: duplicate food id %q", ErrInvalidCatalog, f.ID)
		}
		seen[f.ID] = true
		if err := validateFood(f); err != nil {
			return nil, fmt.Errorf("%w: food %q: %v", ErrInvalidCatalog, f.ID, err)
		}
	}
	return foods, nil
}

func validateFood(f models.Food) error {
	p := f.Ayurvedic
	for _, d := range models.Doshas {
		if e := p.DoshaEffect.For(d); !e.Valid() {
			return fmt.Errorf("dosha effect %s=%q", d, e)
		}
	}
	if !p.Virya.Valid() {
		return fmt.Errorf("virya %q", p.Virya)
	}
	if !p.Digestibility.Valid() {
		return fmt.Errorf("digestibility %q", p.Digestibility)
	}
	for _, r := range p.Rasa {
		if !r.Valid() {
			return fmt.Errorf("rasa %q", r)
		}
	}
	for _, s := range p.Season {
		if !s.Valid() {
			return fmt.Errorf("season %q", s)
		}
	}
	if f.ServingSize <= 0 {
		return fmt.Errorf("serving size %v", f.ServingSize)
	}
	return nil
}

func ParseQuestions(data []byte) ([]models.Question, error) {
	var questions []models.Question
	if err := yaml.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("%w: parse questions: %v", ErrInvalidCatalog, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidCatalog)
	}

	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.ID == "" || seen[q.ID] {
			return nil, fmt.Errorf("%w: missing or duplicate question id %q", ErrInvalidCatalog, q.ID)
		}
		seen[q.ID] = true
		if !q.Category.Valid() {
			return nil, fmt.Errorf("%w: question %s category %q", ErrInvalidCatalog, q.ID, q.Category)
		}
		if len(q.Options) != 3 {
			return nil, fmt.Errorf("%w: question %s has %d options", ErrInvalidCatalog, q.ID, len(q.Options))
		}
		for _, o := range q.Options {
			if !o.Dosha.Valid() || o.Weight <= 0 {
				return nil, fmt.Errorf("%w: question %s option %q", ErrInvalidCatalog, q.ID, o.Text)
			}
		}
	}
	return questions, nil
}
