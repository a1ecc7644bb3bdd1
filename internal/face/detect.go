package face

import (
	"image"
	"math"
)

const (
	minSkinFraction = 0.02
	minBoxFraction  = 0.12
	minFill         = 0.35
)

// Detection is a located face with its measured proportions.
type Detection struct {
	Box          image.Rectangle
	Measurements Measurements
	Confidence   float64
}

// Detect finds the dominant skin region of img. ok is false when no face-sized region exists.
func Detect(img *image.NRGBA) (Detection, bool) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return Detection{}, false
	}

	mask := make([]bool, w*h)
	rows := make([]int, h)
	cols := make([]int, w)
	total := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hue, s, v := colorAt(img, b.Min.X+x, b.Min.Y+y).Hsv()
			if skinDetect(hue, s, v) {
				mask[y*w+x] = true
				rows[y]++
				cols[x]++
				total++
			}
		}
	}
	if float64(total) < minSkinFraction*float64(w*h) {
		return Detection{}, false
	}

	y0, y1 := denseSpan(rows)
	x0, x1 := denseSpan(cols)
	box := image.Rect(x0, y0, x1+1, y1+1)
	if float64(box.Dx()) < minBoxFraction*float64(w) || float64(box.Dy()) < minBoxFraction*float64(h) {
		return Detection{}, false
	}

	inside := 0
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if mask[y*w+x] {
				inside++
			}
		}
	}
	fill := float64(inside) / float64(box.Dx()*box.Dy())
	if fill < minFill {
		return Detection{}, false
	}

	m := measure(mask, w, box)
	return Detection{
		Box:          box.Add(b.Min),
		Measurements: m,
		Confidence:   clamp(0.6+fill*0.4, 0, 0.95),
	}, true
}

// denseSpan returns the first and last index whose count reaches a tenth of the peak.
func denseSpan(counts []int) (int, int) {
	peak := 0
	for _, c := range counts {
		peak = max(peak, c)
	}
	limit := max(1, peak/10)
	first, last := -1, -1
	for i, c := range counts {
		if c >= limit {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	return first, last
}

func measure(mask []bool, stride int, box image.Rectangle) Measurements {
	span := func(y int) (int, int, bool) {
		left, right := -1, -1
		for x := box.Min.X; x < box.Max.X; x++ {
			if mask[y*stride+x] {
				if left < 0 {
					left = x
				}
				right = x
			}
		}
		return left, right, left >= 0
	}
	rowAt := func(f float64) int {
		return min(box.Max.Y-1, box.Min.Y+int(f*float64(box.Dy())))
	}
	width := func(y int) float64 {
		l, r, ok := span(y)
		if !ok {
			return 0
		}
		return float64(r - l + 1)
	}

	var cheek float64
	for y := rowAt(0.3); y <= rowAt(0.6); y++ {
		cheek = math.Max(cheek, width(y))
	}

	m := Measurements{
		FaceLength:     float64(box.Dy()),
		FaceWidth:      cheek,
		ForeheadWidth:  width(rowAt(0.25)),
		CheekboneWidth: cheek,
		JawWidth:       width(rowAt(0.8)),
	}

	jawY := rowAt(0.8)
	jl, jr, ok := span(jawY)
	if !ok {
		return m
	}
	chinX := float64(box.Min.X+box.Max.X) / 2
	if cl, cr, ok := span(rowAt(0.97)); ok {
		chinX = float64(cl+cr) / 2
	}
	chinY := float64(box.Max.Y - 1)
	v1x, v1y := float64(jl)-chinX, float64(jawY)-chinY
	v2x, v2y := float64(jr)-chinX, float64(jawY)-chinY
	n := math.Hypot(v1x, v1y) * math.Hypot(v2x, v2y)
	if n > 0 {
		cos := clamp((v1x*v2x+v1y*v2y)/n, -1, 1)
		m.JawlineAngle = math.Acos(cos) * 180 / math.Pi
	}
	return m
}
