package face

// Undertone is the skin undertone class.
type Undertone string

const (
	UndertoneWarm    Undertone = "warm"
	UndertoneCool    Undertone = "cool"
	UndertoneNeutral Undertone = "neutral"
)

// Shape is a face shape class.
type Shape string

const (
	ShapeOval     Shape = "oval"
	ShapeRound    Shape = "round"
	ShapeSquare   Shape = "square"
	ShapeHeart    Shape = "heart"
	ShapeOblong   Shape = "oblong"
	ShapeDiamond  Shape = "diamond"
	ShapeTriangle Shape = "triangle"
)

// Shapes lists every face shape in scoring order.
var Shapes = []Shape{ShapeRound, ShapeOblong, ShapeHeart, ShapeTriangle, ShapeSquare, ShapeDiamond, ShapeOval}

// HairLevel is the hair coverage class.
type HairLevel string

const (
	HairFull     HairLevel = "full"
	HairThinning HairLevel = "thinning"
	HairBald     HairLevel = "bald"
)

// Season is a color season.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// SkinTone is the Fitzpatrick type plus undertone of the analyzed skin.
type SkinTone struct {
	Type       int       `json:"type" validate:"min=1,max=6"`
	Label      string    `json:"label" validate:"required"`
	Undertone  Undertone `json:"undertone" validate:"oneof=warm cool neutral"`
	Hex        string    `json:"hex" validate:"hexcolor"`
	Confidence float64   `json:"confidence" validate:"gte=0,lte=1"`
}

// FaceShape is the classified face shape.
type FaceShape struct {
	Shape      Shape   `json:"shape" validate:"oneof=oval round square heart oblong diamond triangle"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
	Reasoning  string  `json:"reasoning"`
}

// HairCoverage is the scalp coverage estimate.
type HairCoverage struct {
	Level                      HairLevel `json:"level" validate:"oneof=full thinning bald"`
	Percentage                 float64   `json:"percentage" validate:"gte=0,lte=100"`
	Confidence                 float64   `json:"confidence" validate:"gte=0,lte=1"`
	RequiresAlternativeStyling bool      `json:"requiresAlternativeStyling"`
}

// Result is a complete analysis. It holds no reference fields so copies never alias.
type Result struct {
	Detected          bool         `json:"detected"`
	SkinTone          SkinTone     `json:"skinTone"`
	FaceShape         FaceShape    `json:"faceShape"`
	HairCoverage      HairCoverage `json:"hairCoverage"`
	ColorSeason       Season       `json:"colorSeason" validate:"oneof=spring summer autumn winter"`
	OverallConfidence float64      `json:"overallConfidence" validate:"gte=0,lte=1"`
}

var fitzpatrickLabels = [...]string{"", "Type I", "Type II", "Type III", "Type IV", "Type V", "Type VI"}

// FitzpatrickLabel returns the roman-numeral label for a Fitzpatrick type.
func FitzpatrickLabel(t int) string {
	if t < 1 || t > 6 {
		return ""
	}
	return fitzpatrickLabels[t]
}

// Fixed returns the literal analysis used when no image pipeline runs.
func Fixed() Result {
	r := Result{
		Detected: true,
		SkinTone: SkinTone{
			Type:       4,
			Label:      FitzpatrickLabel(4),
			Undertone:  UndertoneWarm,
			Hex:        "#A0673F",
			Confidence: 0.9,
		},
		FaceShape: FaceShape{
			Shape:      ShapeOval,
			Confidence: 0.87,
			Reasoning:  "Balanced proportions with length-to-width ratio of 1.20",
		},
		HairCoverage: HairCoverage{
			Level:      HairFull,
			Percentage: 92,
			Confidence: 0.85,
		},
		ColorSeason: SeasonAutumn,
	}
	r.OverallConfidence = overall(r.SkinTone.Confidence, r.FaceShape.Confidence, r.HairCoverage.Confidence)
	return r
}

func overall(confidences ...float64) float64 {
	if len(confidences) == 0 {
		return 0
	}
	var sum float64
	for _, c := range confidences {
		sum += c
	}
	return sum / float64(len(confidences))
}
