package face

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func rgbAt(img *image.NRGBA, x, y int) (uint8, uint8, uint8) {
	i := img.PixOffset(x, y)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}

func colorAt(img *image.NRGBA, x, y int) colorful.Color {
	r, g, b := rgbAt(img, x, y)
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// gray uses the BT.601 luma weights on the 0..255 scale.
func gray(img *image.NRGBA, x, y int) float64 {
	r, g, b := rgbAt(img, x, y)
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// skinLoose is the broad skin mask used for color sampling.
// Hue is in degrees, saturation and value in 0..1.
func skinLoose(h, s, v float64) bool {
	return h <= 50 && s >= 10.0/255 && v >= 60.0/255
}

// skinDetect is the stricter mask used to locate the face.
func skinDetect(h, s, v float64) bool {
	return (h <= 50 || h >= 340) && s >= 0.15 && s <= 0.8 && v >= 0.3
}
