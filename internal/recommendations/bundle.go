package recommendations

import "slices"

// Swatch is a named color.
type Swatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Tip is a titled piece of advice.
type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// OccasionLook summarizes an outfit for one occasion.
type OccasionLook struct {
	Occasion string   `json:"occasion"`
	Title    string   `json:"title"`
	Pieces   []string `json:"pieces"`
}

// Bundle is the Recommendations screen content. It does not depend on the analysis.
type Bundle struct {
	Colors    BundleColors   `json:"colors"`
	Style     []Tip          `json:"style"`
	Grooming  []Tip          `json:"grooming"`
	Occasions []OccasionLook `json:"occasions"`
}

type BundleColors struct {
	Best  []Swatch `json:"best"`
	Avoid []Swatch `json:"avoid"`
}

var staticBundle = Bundle{
	Colors: BundleColors{
		Best: []Swatch{
			{Name: "Terracotta", Hex: "#E2725B"},
			{Name: "Olive", Hex: "#808000"},
			{Name: "Mustard", Hex: "#FFDB58"},
			{Name: "Rust", Hex: "#B7410E"},
			{Name: "Camel", Hex: "#C19A6B"},
			{Name: "Forest Green", Hex: "#228B22"},
		},
		Avoid: []Swatch{
			{Name: "Neon Pink", Hex: "#FF6EC7"},
			{Name: "Icy Blue", Hex: "#A5F2F3"},
			{Name: "Stark White", Hex: "#FFFFFF"},
		},
	},
	Style: []Tip{
		{Title: "V-neck and crew necklines", Description: "Balanced necklines keep focus on your natural proportions."},
		{Title: "Earthy layering", Description: "Layer warm neutrals such as camel and olive for depth."},
		{Title: "Tailored fits", Description: "Slim or tailored cuts complement an oval face and balanced build."},
	},
	Grooming: []Tip{
		{Title: "Textured crop", Description: "Adds volume on top while keeping the sides neat."},
		{Title: "Short beard", Description: "A trimmed beard defines the jawline without overpowering it."},
		{Title: "Gold accessories", Description: "Warm metals echo your undertone."},
	},
	Occasions: []OccasionLook{
		{Occasion: "casual", Title: "Weekend Casual", Pieces: []string{"olive henley", "dark jeans", "white sneakers"}},
		{Occasion: "business_casual", Title: "Smart Office", Pieces: []string{"camel blazer", "cream shirt", "brown chinos", "loafers"}},
		{Occasion: "date_night", Title: "Evening Out", Pieces: []string{"rust knit", "charcoal trousers", "chelsea boots"}},
	},
}

// StaticBundle returns a copy of the fixed bundle.
func StaticBundle() Bundle {
	b := Bundle{
		Colors: BundleColors{
			Best:  slices.Clone(staticBundle.Colors.Best),
			Avoid: slices.Clone(staticBundle.Colors.Avoid),
		},
		Style:     slices.Clone(staticBundle.Style),
		Grooming:  slices.Clone(staticBundle.Grooming),
		Occasions: make([]OccasionLook, len(staticBundle.Occasions)),
	}
	for i, o := range staticBundle.Occasions {
		o.Pieces = slices.Clone(o.Pieces)
		b.Occasions[i] = o
	}
	return b
}

// BundleSource is the fetch capability behind the Recommendations screen.
type BundleSource interface {
	Bundle() Bundle
}

// StaticSource serves StaticBundle.
type StaticSource struct{}

func (StaticSource) Bundle() Bundle { return StaticBundle() }
