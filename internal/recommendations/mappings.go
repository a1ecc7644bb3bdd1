package recommendations

import "lookcircuit-backend/internal/face"

const (
	defaultFaceShape = "oval"
	defaultBodyType  = "mesomorph"
	defaultGender    = "male"
)

var seasonalPalettes = map[face.Season]Palette{
	face.SeasonSpring: {
		Best:            []string{"#FFDAB9", "#FFD700", "#FF6347", "#98FB98", "#87CEEB", "#FFA07A", "#F0E68C", "#DDA0DD"},
		Accent:          []string{"#FF4500", "#32CD32", "#FF69B4"},
		Neutral:         []string{"#F5F5DC", "#D2B48C", "#8B7355", "#FFFFF0"},
		Avoid:           []string{"#000000", "#4A0000", "#2F4F4F", "#800000"},
		MetalPreference: "gold",
	},
	face.SeasonSummer: {
		Best:            []string{"#E6E6FA", "#B0C4DE", "#DDA0DD", "#FFC0CB", "#ADD8E6", "#D8BFD8", "#F0E68C", "#98FB98"},
		Accent:          []string{"#9370DB", "#20B2AA", "#DB7093"},
		Neutral:         []string{"#DCDCDC", "#C0C0C0", "#A9A9A9", "#F5F5F5"},
		Avoid:           []string{"#FF4500", "#FFD700", "#8B4513", "#FF6347"},
		MetalPreference: "silver",
	},
	face.SeasonAutumn: {
		Best:            []string{"#8B4513", "#D2691E", "#556B2F", "#CD853F", "#B8860B", "#A0522D", "#6B8E23", "#DAA520"},
		Accent:          []string{"#FF8C00", "#228B22", "#DC143C"},
		Neutral:         []string{"#F5DEB3", "#D2B48C", "#8B7355", "#5C4033"},
		Avoid:           []string{"#FF69B4", "#00FFFF", "#E6E6FA", "#C0C0C0"},
		MetalPreference: "gold",
	},
	face.SeasonWinter: {
		Best:            []string{"#000080", "#800020", "#228B22", "#FFFFFF", "#DC143C", "#4169E1", "#8B008B", "#2F4F4F"},
		Accent:          []string{"#FF0000", "#0000FF", "#FF1493"},
		Neutral:         []string{"#000000", "#FFFFFF", "#808080", "#36454F"},
		Avoid:           []string{"#FFDAB9", "#F5DEB3", "#DEB887", "#FFE4B5"},
		MetalPreference: "silver",
	},
}

var necklinesByFaceShape = map[string][]string{
	"oval":     {"v-neck", "crew", "scoop", "boat", "turtleneck"},
	"round":    {"v-neck", "deep-v", "asymmetric", "open collar"},
	"square":   {"scoop", "round", "cowl", "off-shoulder"},
	"heart":    {"v-neck", "sweetheart", "scoop", "boat"},
	"oblong":   {"crew", "boat", "cowl", "turtleneck", "square"},
	"diamond":  {"boat", "off-shoulder", "v-neck", "scoop"},
	"triangle": {"boat", "off-shoulder", "cowl", "wide scoop"},
}

var eyewearByFaceShape = map[string][]string{
	"oval":     {"aviator", "wayfarer", "round", "cat-eye"},
	"round":    {"rectangular", "square", "angular", "wayfarers"},
	"square":   {"round", "oval", "aviator", "cat-eye"},
	"heart":    {"aviator", "round", "rimless", "light frames"},
	"oblong":   {"oversized", "square", "decorative temples"},
	"diamond":  {"oval", "rimless", "cat-eye", "browline"},
	"triangle": {"cat-eye", "semi-rimless", "bold top frames"},
}

var patternsByBodyType = map[string][]string{
	"ectomorph": {"horizontal stripes", "bold patterns", "large prints"},
	"mesomorph": {"solid colors", "medium patterns", "subtle prints"},
	"endomorph": {"vertical stripes", "small patterns", "solid dark colors"},
}

var fitsByBodyType = map[string][]string{
	"ectomorph": {"regular", "relaxed", "layered"},
	"mesomorph": {"slim", "regular", "tailored"},
	"endomorph": {"regular", "structured", "a-line"},
}

var hairstylesByFaceShape = map[string][]string{
	"oval":     {"side part", "pompadour", "textured crop", "slick back", "quiff"},
	"round":    {"high fade", "pompadour", "side part", "spiky", "undercut"},
	"square":   {"textured top", "side part", "classic taper", "crew cut"},
	"heart":    {"side swept", "fringe", "textured crop", "medium length"},
	"oblong":   {"side part", "bangs", "textured layers", "medium length"},
	"diamond":  {"side swept", "textured fringe", "medium layers"},
	"triangle": {"voluminous top", "side part", "textured quiff"},
}

var beardsByFaceShape = map[string][]string{
	"oval":     {"stubble", "short beard", "full beard", "goatee"},
	"round":    {"chin strap", "goatee", "anchor beard", "extended goatee"},
	"square":   {"stubble", "circle beard", "short boxed beard"},
	"heart":    {"full beard", "balbo", "anchor", "chin curtain"},
	"oblong":   {"mutton chops", "stubble", "short sides long chin"},
	"diamond":  {"full beard", "chin strap", "anchor"},
	"triangle": {"stubble", "goatee", "soul patch"},
}

// Hair-light users get close crops regardless of face shape.
var shortHairstyles = []string{"buzz cut", "clean shave", "very short crop"}

var baldStyling = AlternativeStyling{
	BeardPriority:    []string{"full beard", "sculpted beard", "goatee", "stubble"},
	AccessoryFocus:   []string{"statement glasses", "hats/caps", "scarves"},
	NecklineEmphasis: []string{"v-neck", "open collar", "crew neck"},
	GroomingTips: []string{
		"Keep scalp moisturized and protected from sun",
		"Consider a clean shave for a polished look",
		"Invest in quality sunglasses and eyewear",
		"Well-groomed facial hair adds definition",
	},
}

const hairReasoning = "Focus on complementary accessories and well-groomed facial hair to create a polished look."
