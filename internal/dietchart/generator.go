// internal/dietchart/generator.go
package dietchart

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mcp-ayur-diet/internal/models"
)

// TextGenerator turns a prompt into free-form model output.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator produces diet charts, preferring model output and falling back to
// the static chart whenever the model is unavailable or unusable.
type Generator struct {
	text    TextGenerator
	foods   func() []models.Food
	logger  *zap.Logger
	timeout time.Duration

	now   func() time.Time
	newID func() string
}

// NewGenerator returns a Generator. text may be nil, in which case every chart
// is the fallback chart. foods is called per request so catalogue reloads are
// picked up.
func NewGenerator(text TextGenerator, foods func() []models.Food, logger *zap.Logger, timeout time.Duration) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		text:    text,
		foods:   foods,
		logger:  logger,
		timeout: timeout,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Generate always returns a chart.
func (g *Generator) Generate(ctx context.Context, req Request) *models.DietChart {
	req = req.withDefaults()
	foods := g.foods()

	chart, err := g.fromModel(ctx, req, foods)
	if err != nil {
		if g.text != nil {
			g.logger.Warn("diet chart generation fell back to static plan",
				zap.String("patient_id", req.Patient.ID),
				zap.Error(err))
		}
		chart = Fallback(req, foods)
	}

	chart.ID = g.newID()
	chart.CreatedAt = g.now().UTC()
	return chart
}

func (g *Generator) fromModel(ctx context.Context, req Request, foods []models.Food) (*models.DietChart, error) {
	if g.text == nil {
		return nil, fmt.Errorf("%w: no generator configured", ErrExternalService)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	names := make([]string, len(foods))
	for i, f := range foods {
		names[i] = f.Name
	}

	text, err := g.text.Generate(ctx, BuildPrompt(req, names))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	chart, err := Parse(text, req, foods)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExternalService, err)
	}
	return chart, nil
}
