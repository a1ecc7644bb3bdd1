package recommendations

import (
	"fmt"
	"slices"
	"strings"

	"lookcircuit-backend/internal/face"
)

// Generate builds deterministic recommendations for an analysis summary.
// Unknown face shapes use the oval tables and unknown body types the mesomorph ones.
func Generate(in Input) Result {
	season := face.SeasonFor(in.FitzpatrickType, normalizeUndertone(in.Undertone))
	palette := clonePalette(seasonalPalettes[season])

	shape := strings.ToLower(strings.TrimSpace(in.FaceShape))
	body := strings.TrimSpace(in.BodyType)
	if body == "" {
		body = defaultBodyType
	}
	bodyKey := strings.ToLower(body)
	hairLight := isHairLight(in.HairCoverage)

	necklines := lookup(necklinesByFaceShape, shape, defaultFaceShape)
	patterns := lookup(patternsByBodyType, bodyKey, defaultBodyType)

	res := Result{
		ColorAnalysis: ColorAnalysis{Season: season, Palette: palette},
		Style: Style{
			Necklines: necklines,
			Patterns:  patterns,
			Fits:      lookup(fitsByBodyType, bodyKey, defaultBodyType),
			Eyewear:   lookup(eyewearByFaceShape, shape, defaultFaceShape),
		},
		Grooming: Grooming{
			Hairstyles:  hairstyles(shape, hairLight),
			BeardStyles: beards(shape, hairLight, in.Gender),
		},
		Reasoning: map[string]string{
			"color": fmt.Sprintf("Your %s undertone and Type %d skin place you in the %s color season.",
				in.Undertone, in.FitzpatrickType, strings.ToUpper(string(season))),
			"necklines": fmt.Sprintf("Your %s face shape is complemented by %s necklines.",
				in.FaceShape, strings.Join(firstN(necklines, 3), ", ")),
			"patterns": fmt.Sprintf("Your %s body type works well with %s.",
				body, strings.Join(firstN(patterns, 2), ", ")),
		},
	}
	if hairLight {
		alt := cloneStyling(baldStyling)
		res.AlternativeStyling = &alt
		res.Reasoning["hair"] = hairReasoning
	}
	return res
}

// InputFromAnalysis summarizes a face analysis for the engine.
func InputFromAnalysis(r face.Result, bodyType, gender string) Input {
	return Input{
		FitzpatrickType: r.SkinTone.Type,
		Undertone:       r.SkinTone.Undertone,
		FaceShape:       string(r.FaceShape.Shape),
		BodyType:        bodyType,
		HairCoverage:    r.HairCoverage.Level,
		Gender:          gender,
	}
}

// PaletteFor returns a copy of the palette for a season.
func PaletteFor(season face.Season) (Palette, bool) {
	p, ok := seasonalPalettes[season]
	if !ok {
		return Palette{}, false
	}
	return clonePalette(p), true
}

func normalizeUndertone(u face.Undertone) face.Undertone {
	return face.Undertone(strings.ToLower(strings.TrimSpace(string(u))))
}

func isHairLight(level face.HairLevel) bool {
	switch face.HairLevel(strings.ToLower(string(level))) {
	case face.HairBald, face.HairThinning:
		return true
	default:
		return false
	}
}

func hairstyles(shape string, hairLight bool) []string {
	if hairLight {
		return slices.Clone(shortHairstyles)
	}
	return lookup(hairstylesByFaceShape, shape, defaultFaceShape)
}

func beards(shape string, hairLight bool, gender string) []string {
	if normalizeGender(gender) != defaultGender {
		return []string{}
	}
	if hairLight {
		return slices.Clone(baldStyling.BeardPriority)
	}
	return lookup(beardsByFaceShape, shape, defaultFaceShape)
}

// normalizeGender maps anything other than female to male.
func normalizeGender(g string) string {
	if strings.EqualFold(strings.TrimSpace(g), "female") {
		return "female"
	}
	return defaultGender
}

func lookup(table map[string][]string, key, fallback string) []string {
	if v, ok := table[key]; ok {
		return slices.Clone(v)
	}
	return slices.Clone(table[fallback])
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}

func clonePalette(p Palette) Palette {
	return Palette{
		Best:            slices.Clone(p.Best),
		Accent:          slices.Clone(p.Accent),
		Neutral:         slices.Clone(p.Neutral),
		Avoid:           slices.Clone(p.Avoid),
		MetalPreference: p.MetalPreference,
	}
}

func cloneStyling(s AlternativeStyling) AlternativeStyling {
	return AlternativeStyling{
		BeardPriority:    slices.Clone(s.BeardPriority),
		AccessoryFocus:   slices.Clone(s.AccessoryFocus),
		NecklineEmphasis: slices.Clone(s.NecklineEmphasis),
		GroomingTips:     slices.Clone(s.GroomingTips),
	}
}
