package face

import (
	"image"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const minSkinSamples = 10

// Fitzpatrick bands over CIE L*, each half-open [low, high).
var fitzpatrickBands = []struct {
	low, high float64
	kind      int
}{{75, 100, 1}, {65, 75, 2}, {55, 65, 3}, {45, 55, 4}, {35, 45, 5}, {0, 35, 6}}

// edgeConfidence is used for lightness outside every band.
const edgeConfidence = 0.85

// ClassifyFitzpatrick maps a CIE L* lightness (0..100) to a Fitzpatrick type and confidence.
func ClassifyFitzpatrick(lightness float64) (int, float64) {
	for _, b := range fitzpatrickBands {
		if lightness >= b.low && lightness < b.high {
			return b.kind, bandConfidence(lightness, b.low, b.high)
		}
	}
	if lightness >= 75 {
		return 1, edgeConfidence
	}
	return 6, edgeConfidence
}

// bandConfidence is 1 at the centre of the band and falls linearly to 0 at its edges,
// clamped to [0.7, 0.98].
func bandConfidence(v, lo, hi float64) float64 {
	half := (hi - lo) / 2
	dist := math.Abs(v - (lo + half))
	return clamp(1-dist/half, 0.7, 0.98)
}

// ClassifyUndertone compares b* against a* shifted into the positive range.
func ClassifyUndertone(a, b float64) (Undertone, float64) {
	ratio := (b + 128) / (a + 128)
	switch {
	case ratio > 1.1:
		return UndertoneWarm, math.Min(0.95, 0.7+(ratio-1.1)*0.1)
	case ratio < 0.9:
		return UndertoneCool, math.Min(0.95, 0.7+(0.9-ratio)*0.1)
	default:
		return UndertoneNeutral, 0.8 + (1-math.Abs(ratio-1))*0.15
	}
}

// SkinToneOf samples the cheeks and forehead of the face box.
func SkinToneOf(img *image.NRGBA, faceBox image.Rectangle) SkinTone {
	w, h := faceBox.Dx(), faceBox.Dy()
	region := func(x0, y0, x1, y1 float64) image.Rectangle {
		return image.Rect(
			faceBox.Min.X+int(x0*float64(w)), faceBox.Min.Y+int(y0*float64(h)),
			faceBox.Min.X+int(x1*float64(w)), faceBox.Min.Y+int(y1*float64(h)),
		).Intersect(img.Bounds())
	}
	regions := []image.Rectangle{
		region(0.15, 0.45, 0.40, 0.65),
		region(0.60, 0.45, 0.85, 0.65),
		region(0.30, 0.10, 0.70, 0.25),
	}

	var samples []colorful.Color
	for _, r := range regions {
		samples = append(samples, sampleRegion(img, r)...)
	}
	if len(samples) == 0 {
		samples = sampleRegion(img, faceBox.Intersect(img.Bounds()))
	}

	var l, a, b float64
	for _, c := range samples {
		cl, ca, cb := c.Lab()
		l += cl
		a += ca
		b += cb
	}
	n := float64(len(samples))
	if n == 0 {
		n = 1
	}
	l, a, b = l/n, a/n, b/n

	kind, typeConf := ClassifyFitzpatrick(l * 100)
	undertone, undertoneConf := ClassifyUndertone(a*100, b*100)
	hex := strings.ToUpper(colorful.Lab(l, a, b).Clamped().Hex())

	return SkinTone{
		Type:       kind,
		Label:      FitzpatrickLabel(kind),
		Undertone:  undertone,
		Hex:        hex,
		Confidence: (typeConf + undertoneConf) / 2,
	}
}

// sampleRegion returns the skin-masked pixels of r, or its centre half when too few match.
func sampleRegion(img *image.NRGBA, r image.Rectangle) []colorful.Color {
	if r.Empty() {
		return nil
	}
	var out []colorful.Color
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := colorAt(img, x, y)
			h, s, v := c.Hsv()
			if skinLoose(h, s, v) {
				out = append(out, c)
			}
		}
	}
	if len(out) >= minSkinSamples {
		return out
	}
	out = out[:0]
	qw, qh := r.Dx()/4, r.Dy()/4
	for y := r.Min.Y + qh; y < r.Max.Y-qh; y++ {
		for x := r.Min.X + qw; x < r.Max.X-qw; x++ {
			out = append(out, colorAt(img, x, y))
		}
	}
	return out
}
