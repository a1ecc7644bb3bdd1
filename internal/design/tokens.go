// Package design holds the visual constants shared by every screen.
package design

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

type Colors struct {
	Primary       string `json:"primary"`
	PrimaryDark   string `json:"primaryDark"`
	Accent        string `json:"accent"`
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	SurfaceMuted  string `json:"surfaceMuted"`
	Border        string `json:"border"`
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextInverse   string `json:"textInverse"`
	Success       string `json:"success"`
	Warning       string `json:"warning"`
	Error         string `json:"error"`
	Favorite      string `json:"favorite"`
}

type Spacing struct {
	XXS int `json:"xxs"`
	XS  int `json:"xs"`
	SM  int `json:"sm"`
	MD  int `json:"md"`
	LG  int `json:"lg"`
	XL  int `json:"xl"`
	XXL int `json:"xxl"`
}

type Radius struct {
	SM   int `json:"sm"`
	MD   int `json:"md"`
	LG   int `json:"lg"`
	XL   int `json:"xl"`
	Pill int `json:"pill"`
}

type TextStyle struct {
	Size       int    `json:"size"`
	LineHeight int    `json:"lineHeight"`
	Weight     string `json:"weight"`
}

type Typography struct {
	FontFamily string               `json:"fontFamily"`
	Scale      map[string]TextStyle `json:"scale"`
}

type Motion struct {
	FastMs   int    `json:"fastMs"`
	NormalMs int    `json:"normalMs"`
	SlowMs   int    `json:"slowMs"`
	Easing   string `json:"easing"`
}

type Tokens struct {
	Colors     Colors     `json:"colors"`
	Spacing    Spacing    `json:"spacing"`
	Radius     Radius     `json:"radius"`
	Typography Typography `json:"typography"`
	Motion     Motion     `json:"motion"`
}

var defaults = Tokens{
	Colors: Colors{
		Primary:       "#1F3A5F",
		PrimaryDark:   "#13263F",
		Accent:        "#E2725B",
		Background:    "#FAF8F5",
		Surface:       "#FFFFFF",
		SurfaceMuted:  "#F1EEE9",
		Border:        "#E0DBD3",
		TextPrimary:   "#1A1A1A",
		TextSecondary: "#6B6B6B",
		TextInverse:   "#FFFFFF",
		Success:       "#2E7D32",
		Warning:       "#ED8C00",
		Error:         "#C62828",
		Favorite:      "#E53950",
	},
	Spacing: Spacing{XXS: 2, XS: 4, SM: 8, MD: 16, LG: 24, XL: 32, XXL: 48},
	Radius:  Radius{SM: 4, MD: 8, LG: 16, XL: 24, Pill: 999},
	Typography: Typography{
		FontFamily: "Inter",
		Scale: map[string]TextStyle{
			"display":  {Size: 34, LineHeight: 41, Weight: "700"},
			"title":    {Size: 28, LineHeight: 34, Weight: "700"},
			"headline": {Size: 22, LineHeight: 28, Weight: "600"},
			"subhead":  {Size: 17, LineHeight: 22, Weight: "600"},
			"body":     {Size: 15, LineHeight: 20, Weight: "400"},
			"caption":  {Size: 13, LineHeight: 18, Weight: "400"},
			"micro":    {Size: 11, LineHeight: 13, Weight: "500"},
		},
	},
	Motion: Motion{FastMs: 150, NormalMs: 250, SlowMs: 400, Easing: "ease-in-out"},
}

// Default returns a copy of the app tokens.
func Default() Tokens {
	t := defaults
	t.Typography.Scale = make(map[string]TextStyle, len(defaults.Typography.Scale))
	for k, v := range defaults.Typography.Scale {
		t.Typography.Scale[k] = v
	}
	return t
}

// ColorMap lists every color token by its JSON name.
func (t Tokens) ColorMap() map[string]string {
	c := t.Colors
	return map[string]string{
		"primary":       c.Primary,
		"primaryDark":   c.PrimaryDark,
		"accent":        c.Accent,
		"background":    c.Background,
		"surface":       c.Surface,
		"surfaceMuted":  c.SurfaceMuted,
		"border":        c.Border,
		"textPrimary":   c.TextPrimary,
		"textSecondary": c.TextSecondary,
		"textInverse":   c.TextInverse,
		"success":       c.Success,
		"warning":       c.Warning,
		"error":         c.Error,
		"favorite":      c.Favorite,
	}
}

// Validate checks that every color parses and the numeric scales are increasing.
func (t Tokens) Validate() error {
	for name, hex := range t.ColorMap() {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("color %s: %w", name, err)
		}
	}
	s := t.Spacing
	if !increasing(s.XXS, s.XS, s.SM, s.MD, s.LG, s.XL, s.XXL) {
		return fmt.Errorf("spacing scale must increase")
	}
	r := t.Radius
	if !increasing(r.SM, r.MD, r.LG, r.XL, r.Pill) {
		return fmt.Errorf("radius scale must increase")
	}
	if !increasing(t.Motion.FastMs, t.Motion.NormalMs, t.Motion.SlowMs) {
		return fmt.Errorf("motion durations must increase")
	}
	for name, style := range t.Typography.Scale {
		if style.Size <= 0 || style.LineHeight < style.Size {
			return fmt.Errorf("text style %s: line height must be at least the font size", name)
		}
	}
	return nil
}

// Contrast is the WCAG contrast ratio between two hex colors.
func Contrast(fg, bg string) (float64, error) {
	a, err := colorful.Hex(fg)
	if err != nil {
		return 0, err
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return 0, err
	}
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func increasing(vals ...int) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			return false
		}
	}
	return true
}
