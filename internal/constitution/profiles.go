// internal/constitution/profiles.go
package constitution

import "mcp-ayur-diet/internal/models"

type profile struct {
	description     string
	recommendations []string
}

var (
	vataProfile = profile{
		description: "You have a Vata-dominant constitution. Vata governs movement, circulation, and the nervous system.",
		recommendations: []string{
			"Eat warm, cooked, nourishing foods",
			"Maintain regular routines and meal times",
			"Practice calming activities like yoga and meditation",
			"Get adequate rest and avoid overstimulation",
			"Use warming spices like ginger, cinnamon, and cardamom",
		},
	}
	pittaProfile = profile{
		description: "You have a Pitta-dominant constitution. Pitta governs digestion, metabolism, and transformation.",
		recommendations: []string{
			"Eat cooling, sweet, and bitter foods",
			"Avoid excessive heat and spicy foods",
			"Practice moderation in all activities",
			"Stay cool and avoid direct sunlight during peak hours",
			"Use cooling spices like coriander, fennel, and mint",
		},
	}
	kaphaProfile = profile{
		description: "You have a Kapha-dominant constitution. Kapha governs structure, immunity, and lubrication.",
		recommendations: []string{
			"Eat light, warm, and spicy foods",
			"Engage in regular vigorous exercise",
			"Avoid heavy, oily, and cold foods",
			"Maintain an active lifestyle",
			"Use warming spices like black pepper, turmeric, and ginger",
		},
	}
	// Dual constitutions and tridosha share one body.
	mixedProfile = profile{
		description: "You have a balanced or dual constitution, which requires a more individualized approach.",
		recommendations: []string{
			"Follow seasonal eating patterns",
			"Listen to your body and adjust diet accordingly",
			"Maintain balance in all aspects of life",
			"Consult with an Ayurvedic practitioner for personalized guidance",
		},
	}
)

func profileFor(c models.Constitution) profile {
	switch c {
	case models.ConstitutionVata:
		return vataProfile
	case models.ConstitutionPitta:
		return pittaProfile
	case models.ConstitutionKapha:
		return kaphaProfile
	default:
		return mixedProfile
	}
}
