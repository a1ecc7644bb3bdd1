package face

import (
	"image"
	"math"
)

const (
	fullCoverage     = 80.0
	thinningCoverage = 40.0
	edgeMagnitude    = 150.0
)

// HairLevelFor buckets a coverage percentage.
func HairLevelFor(percentage float64) HairLevel {
	switch {
	case percentage >= fullCoverage:
		return HairFull
	case percentage >= thinningCoverage:
		return HairThinning
	default:
		return HairBald
	}
}

// scalpRegion is the band above the face, half the face height tall and 1.2x as wide.
func scalpRegion(bounds, faceBox image.Rectangle) image.Rectangle {
	w, h := faceBox.Dx(), faceBox.Dy()
	top := max(bounds.Min.Y, faceBox.Min.Y-h/2)
	left := max(bounds.Min.X, faceBox.Min.X-w/10)
	right := min(bounds.Max.X, left+w*12/10)
	return image.Rect(left, top, right, faceBox.Min.Y)
}

// HairCoverageOf estimates how much of the scalp band is covered by hair.
func HairCoverageOf(img *image.NRGBA, faceBox image.Rectangle) HairCoverage {
	region := scalpRegion(img.Bounds(), faceBox)
	if region.Dx() < 10 || region.Dy() < 10 {
		return HairCoverage{Level: HairFull, Percentage: 100, Confidence: 0.5}
	}

	w, h := region.Dx(), region.Dy()
	grays := make([]float64, w*h)
	var mean float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := gray(img, region.Min.X+x, region.Min.Y+y)
			grays[y*w+x] = g
			mean += g
		}
	}
	mean /= float64(w * h)
	darkThreshold := math.Max(50, mean*0.6)

	edges := sobelEdges(grays, w, h)
	texture := dilate(dilate(edges, w, h), w, h)

	hair := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if grays[i] >= darkThreshold {
				continue
			}
			_, s, _ := colorAt(img, region.Min.X+x, region.Min.Y+y).Hsv()
			hair[i] = s*255 < 80 || texture[i]
		}
	}
	hair = erode(dilate(hair, w, h), w, h)
	hair = dilate(erode(hair, w, h), w, h)

	var hairPixels, edgePixels int
	for i := range hair {
		if hair[i] {
			hairPixels++
		}
		if edges[i] {
			edgePixels++
		}
	}
	total := float64(w * h)
	percentage := float64(hairPixels) / total * 100
	level := HairLevelFor(percentage)
	return HairCoverage{
		Level:                      level,
		Percentage:                 math.Round(percentage*10) / 10,
		Confidence:                 math.Min(0.95, 0.7+float64(edgePixels)/total*0.5),
		RequiresAlternativeStyling: level != HairFull,
	}
}

func sobelEdges(g []float64, w, h int) []bool {
	out := make([]bool, w*h)
	at := func(x, y int) float64 {
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		return g[y*w+x]
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1) - at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1)
			gy := at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1) - at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1)
			out[y*w+x] = math.Hypot(gx, gy) >= edgeMagnitude
		}
	}
	return out
}

// cross is the 3x3 elliptical structuring element.
var cross = [...][2]int{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func dilate(m []bool, w, h int) []bool {
	return morph(m, w, h, false)
}

func erode(m []bool, w, h int) []bool {
	return morph(m, w, h, true)
}

// morph ignores neighbours outside the region.
func morph(m []bool, w, h int, all bool) []bool {
	out := make([]bool, len(m))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := all
			for _, d := range cross {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				if all {
					v = v && m[ny*w+nx]
				} else {
					v = v || m[ny*w+nx]
				}
			}
			out[y*w+x] = v
		}
	}
	return out
}
