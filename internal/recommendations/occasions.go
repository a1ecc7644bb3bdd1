package recommendations

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	fallbackOccasion = "casual"
	defaultGrooming  = "Maintain a clean, well-groomed appearance."
)

// DefaultPalette is used when a caller has no palette of its own.
var DefaultPalette = []string{"#000080", "#FFFFFF", "#808080", "#8B4513"}

var fallbackColors = []string{"#000000", "#FFFFFF"}

//go:embed occasions.yaml
var occasionsYAML []byte

type wardrobeTemplate struct {
	Tops        []string `yaml:"tops"`
	Bottoms     []string `yaml:"bottoms"`
	Footwear    []string `yaml:"footwear"`
	Accessories []string `yaml:"accessories"`
}

type occasionTemplate struct {
	Key      string           `yaml:"key"`
	Grooming string           `yaml:"grooming"`
	Male     wardrobeTemplate `yaml:"male"`
	Female   wardrobeTemplate `yaml:"female"`
}

var occasionTemplates = mustLoadOccasions(occasionsYAML)

func loadOccasions(data []byte) ([]occasionTemplate, error) {
	var out []occasionTemplate
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse occasions: %w", err)
	}
	for _, t := range out {
		for _, w := range []wardrobeTemplate{t.Male, t.Female} {
			if len(w.Tops) == 0 || len(w.Bottoms) == 0 || len(w.Footwear) == 0 {
				return nil, fmt.Errorf("occasion %q: every template needs tops, bottoms and footwear", t.Key)
			}
		}
	}
	return out, nil
}

func mustLoadOccasions(data []byte) []occasionTemplate {
	out, err := loadOccasions(data)
	if err != nil {
		panic(err)
	}
	return out
}

// Occasions lists the supported occasion keys in catalog order.
func Occasions() []string {
	keys := make([]string, 0, len(occasionTemplates))
	for _, t := range occasionTemplates {
		keys = append(keys, t.Key)
	}
	return keys
}

// OccasionKey lowercases the name and joins words with underscores.
func OccasionKey(occasion string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(occasion)), " ", "_")
}

func findOccasion(key string) occasionTemplate {
	for _, t := range occasionTemplates {
		if t.Key == key {
			return t
		}
	}
	for _, t := range occasionTemplates {
		if t.Key == fallbackOccasion {
			return t
		}
	}
	return occasionTemplates[0]
}

// OutfitFor builds an outfit for an occasion. Unknown occasions fall back to casual
// and unknown genders to male. The first three palette colors drive the suggestions.
func OutfitFor(occasion, gender string, palette []string) Outfit {
	tmpl := findOccasion(OccasionKey(occasion))
	w := tmpl.Male
	if normalizeGender(gender) == "female" {
		w = tmpl.Female
	}

	primary := slices.Clone(firstN(palette, 3))
	if len(primary) == 0 {
		primary = slices.Clone(fallbackColors)
	}
	bottomColor := "#000000"
	if len(primary) > 1 {
		bottomColor = primary[1]
	}
	grooming := tmpl.Grooming
	if grooming == "" {
		grooming = defaultGrooming
	}

	return Outfit{
		Occasion:         occasion,
		Top:              piece(w.Tops, primary[0]),
		Bottom:           piece(w.Bottoms, bottomColor),
		Footwear:         piece(w.Footwear, "neutral"),
		Accessories:      slices.Clone(w.Accessories),
		GroomingNotes:    grooming,
		ColorSuggestions: primary,
	}
}

func piece(options []string, color string) Piece {
	return Piece{
		Type:            options[0],
		Alternatives:    slices.Clone(options[1:]),
		ColorSuggestion: color,
	}
}
