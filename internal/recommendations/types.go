package recommendations

import "lookcircuit-backend/internal/face"

// Input is the analysis summary recommendations are generated from.
type Input struct {
	FitzpatrickType int            `json:"fitzpatrickType" binding:"required,min=1,max=6"`
	Undertone       face.Undertone `json:"undertone" binding:"required,oneof=warm cool neutral"`
	FaceShape       string         `json:"faceShape" binding:"required"`
	BodyType        string         `json:"bodyType"`
	HairCoverage    face.HairLevel `json:"hairCoverage" binding:"omitempty,oneof=full thinning bald"`
	Gender          string         `json:"gender"`
}

// Palette is a seasonal color palette.
type Palette struct {
	Best            []string `json:"bestColors"`
	Accent          []string `json:"accentColors"`
	Neutral         []string `json:"neutralColors"`
	Avoid           []string `json:"avoidColors"`
	MetalPreference string   `json:"metalPreference"`
}

type ColorAnalysis struct {
	Season face.Season `json:"season"`
	Palette
}

type Style struct {
	Necklines []string `json:"recommendedNecklines"`
	Patterns  []string `json:"patterns"`
	Fits      []string `json:"fits"`
	Eyewear   []string `json:"eyewear"`
}

type Grooming struct {
	Hairstyles  []string `json:"hairstyles"`
	BeardStyles []string `json:"beardStyles"`
}

// AlternativeStyling is added for bald and thinning users.
type AlternativeStyling struct {
	BeardPriority    []string `json:"beardPriority"`
	AccessoryFocus   []string `json:"accessoryFocus"`
	NecklineEmphasis []string `json:"necklineEmphasis"`
	GroomingTips     []string `json:"groomingTips"`
}

// Result is a complete personalized recommendation.
type Result struct {
	ColorAnalysis      ColorAnalysis       `json:"colorAnalysis"`
	Style              Style               `json:"style"`
	Grooming           Grooming            `json:"grooming"`
	Reasoning          map[string]string   `json:"reasoning"`
	AlternativeStyling *AlternativeStyling `json:"alternativeStyling,omitempty"`
}

// Piece is one garment slot of an outfit.
type Piece struct {
	Type            string   `json:"type"`
	Alternatives    []string `json:"alternatives"`
	ColorSuggestion string   `json:"colorSuggestion"`
}

// Outfit is a complete look for an occasion.
type Outfit struct {
	Occasion         string   `json:"occasion"`
	Top              Piece    `json:"top"`
	Bottom           Piece    `json:"bottom"`
	Footwear         Piece    `json:"footwear"`
	Accessories      []string `json:"accessories"`
	GroomingNotes    string   `json:"groomingNotes"`
	ColorSuggestions []string `json:"colorSuggestions"`
}
