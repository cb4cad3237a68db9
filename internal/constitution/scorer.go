// internal/constitution/scorer.go
package constitution

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"mcp-ayur-diet/internal/models"
)

var (
	ErrIncompleteAnswerSet = errors.New("incomplete answer set")
	ErrInvalidAnswer       = errors.New("invalid answer")
)

const (
	// singleThreshold is the share above which one dosha alone classifies the respondent.
	singleThreshold = 50.0
	// dualGap is the largest gap between the top two shares still classified as dual.
	dualGap = 15.0
)

type share struct {
	dosha   models.Dosha
	percent float64
}

// Score classifies a respondent from a complete answer set. Every question must
// have an answer; answers for unknown question ids are ignored.
func Score(questions []models.Question, answers models.AnswerSet) (*models.ConstitutionResult, error) {
	var missing []string
	totals := make(map[models.Dosha]int, len(models.Doshas))

	for _, q := range questions {
		idx, ok := answers[q.ID]
		if !ok {
			missing = append(missing, q.ID)
			continue
		}
		if idx < 0 || idx >= len(q.Options) {
			return nil, fmt.Errorf("%w: question %s has no option %d", ErrInvalidAnswer, q.ID, idx)
		}
		opt := q.Options[idx]
		totals[opt.Dosha] += opt.Weight
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %d of %d questions unanswered (%s)",
			ErrIncompleteAnswerSet, len(missing), len(questions), strings.Join(missing, ", "))
	}

	grand := 0
	for _, d := range models.Doshas {
		grand += totals[d]
	}
	if grand <= 0 {
		return nil, fmt.Errorf("%w: no weighted answers", ErrIncompleteAnswerSet)
	}

	shares := make([]share, 0, len(models.Doshas))
	for _, d := range models.Doshas {
		shares = append(shares, share{dosha: d, percent: 100 * float64(totals[d]) / float64(grand)})
	}

	result := &models.ConstitutionResult{
		Vata:  int(math.Round(shares[0].percent)),
		Pitta: int(math.Round(shares[1].percent)),
		Kapha: int(math.Round(shares[2].percent)),
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].percent > shares[j].percent
	})
	result.Dominant = classify(shares)

	p := profileFor(result.Dominant)
	result.Description = p.description
	result.Recommendations = append([]string(nil), p.recommendations...)

	return result, nil
}

// classify expects shares sorted descending.
func classify(shares []share) models.Constitution {
	top, second := shares[0], shares[1]

	if top.percent > singleThreshold {
		return single(top.dosha)
	}
	if top.percent-second.percent < dualGap {
		return dual(top.dosha, second.dosha)
	}
	return single(top.dosha)
}

func single(d models.Dosha) models.Constitution {
	switch d {
	case models.Vata:
		return models.ConstitutionVata
	case models.Pitta:
		return models.ConstitutionPitta
	case models.Kapha:
		return models.ConstitutionKapha
	}
	return models.ConstitutionTridosha
}

// dual names the pair only when the leading dosha comes first in it; any
// other ordering is tridosha.
func dual(top, second models.Dosha) models.Constitution {
	switch {
	case top == models.Vata && second == models.Pitta:
		return models.ConstitutionVataPitta
	case top == models.Pitta && second == models.Kapha:
		return models.ConstitutionPittaKapha
	case top == models.Vata && second == models.Kapha:
		return models.ConstitutionVataKapha
	default:
		return models.ConstitutionTridosha
	}
}
