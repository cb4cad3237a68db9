// internal/models/food.go
package models

type Dosha string

const (
	Vata  Dosha = "vata"
	Pitta Dosha = "pitta"
	Kapha Dosha = "kapha"
)

// Doshas lists the three doshas in canonical order.
var Doshas = []Dosha{Vata, Pitta, Kapha}

func (d Dosha) Valid() bool {
	switch d {
	case Vata, Pitta, Kapha:
		return true
	}
	return false
}

// Title returns the capitalized dosha name used in user-facing text.
func (d Dosha) Title() string {
	switch d {
	case Vata:
		return "Vata"
	case Pitta:
		return "Pitta"
	case Kapha:
		return "Kapha"
	}
	return string(d)
}

type Effect string

const (
	Increase Effect = "increase"
	Decrease Effect = "decrease"
	Neutral  Effect = "neutral"
)

func (e Effect) Valid() bool {
	switch e {
	case Increase, Decrease, Neutral:
		return true
	}
	return false
}

type Rasa string

const (
	Sweet      Rasa = "sweet"
	Sour       Rasa = "sour"
	Salty      Rasa = "salty"
	Pungent    Rasa = "pungent"
	Bitter     Rasa = "bitter"
	Astringent Rasa = "astringent"
)

// Rasas lists the six tastes in canonical order.
var Rasas = []Rasa{Sweet, Sour, Salty, Pungent, Bitter, Astringent}

func (r Rasa) Valid() bool {
	switch r {
	case Sweet, Sour, Salty, Pungent, Bitter, Astringent:
		return true
	}
	return false
}

type Virya string

const (
	Hot  Virya = "hot"
	Cold Virya = "cold"
)

func (v Virya) Valid() bool {
	return v == Hot || v == Cold
}

type Digestibility string

const (
	EasyDigest      Digestibility = "easy"
	ModerateDigest  Digestibility = "moderate"
	DifficultDigest Digestibility = "difficult"
)

func (d Digestibility) Valid() bool {
	switch d {
	case EasyDigest, ModerateDigest, DifficultDigest:
		return true
	}
	return false
}

type Season string

const (
	Spring  Season = "spring"
	Summer  Season = "summer"
	Monsoon Season = "monsoon"
	Autumn  Season = "autumn"
	Winter  Season = "winter"
)

func (s Season) Valid() bool {
	switch s {
	case Spring, Summer, Monsoon, Autumn, Winter:
		return true
	}
	return false
}

// NonVegetarianCategory is the food category excluded for plant-based diets.
const NonVegetarianCategory = "Non-Vegetarian"

// DoshaEffect maps each dosha to the food's effect on it.
type DoshaEffect struct {
	Vata  Effect `json:"vata" yaml:"vata"`
	Pitta Effect `json:"pitta" yaml:"pitta"`
	Kapha Effect `json:"kapha" yaml:"kapha"`
}

// For returns the effect on d. Unknown doshas are neutral.
func (e DoshaEffect) For(d Dosha) Effect {
	switch d {
	case Vata:
		return e.Vata
	case Pitta:
		return e.Pitta
	case Kapha:
		return e.Kapha
	}
	return Neutral
}

type AyurvedicProperties struct {
	Rasa          []Rasa        `json:"rasa" yaml:"rasa"`
	Virya         Virya         `json:"virya" yaml:"virya"`
	Digestibility Digestibility `json:"digestibility" yaml:"digestibility"`
	Season        []Season      `json:"season,omitempty" yaml:"season,omitempty"`
	DoshaEffect   DoshaEffect   `json:"dosha_effect" yaml:"dosha_effect"`
}

// InSeason reports whether the food lists s among its seasons.
func (p AyurvedicProperties) InSeason(s Season) bool {
	for _, season := range p.Season {
		if season == s {
			return true
		}
	}
	return false
}

// Food is static reference data; macros are per serving of ServingSize grams.
type Food struct {
	ID          string              `json:"id" yaml:"id"`
	Name        string              `json:"name" yaml:"name"`
	Category    string              `json:"category" yaml:"category"`
	ServingSize float64             `json:"serving_size" yaml:"serving_size"`
	Calories    float64             `json:"calories" yaml:"calories"`
	Protein     float64             `json:"protein" yaml:"protein"`
	Carbs       float64             `json:"carbs" yaml:"carbs"`
	Fat         float64             `json:"fat" yaml:"fat"`
	Fiber       float64             `json:"fiber" yaml:"fiber"`
	Ayurvedic   AyurvedicProperties `json:"ayurvedic_properties" yaml:"ayurvedic_properties"`
}

type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}
