// internal/compatibility/rank.go
package compatibility

import (
	"sort"

	"mcp-ayur-diet/internal/models"
)

type Rating string

const (
	Excellent Rating = "excellent"
	Good      Rating = "good"
	Fair      Rating = "fair"
	Poor      Rating = "poor"
)

// RatingFor buckets a score for display.
func RatingFor(score int) Rating {
	switch {
	case score >= 80:
		return Excellent
	case score >= 60:
		return Good
	case score >= 40:
		return Fair
	default:
		return Poor
	}
}

// Ranked pairs a food with its compatibility result.
type Ranked struct {
	Food          models.Food                `json:"food"`
	Compatibility models.CompatibilityResult `json:"compatibility"`
	Rating        Rating                     `json:"rating"`
}

// Rank scores every food for patient, best first. Ties keep input order.
func Rank(foods []models.Food, patient models.Patient) []Ranked {
	ranked := make([]Ranked, len(foods))
	for i, f := range foods {
		res := Score(f, patient)
		ranked[i] = Ranked{Food: f, Compatibility: res, Rating: RatingFor(res.Score)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Compatibility.Score > ranked[j].Compatibility.Score
	})
	return ranked
}
