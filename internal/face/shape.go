package face

import (
	"fmt"
	"sort"
)

// Measurements are the facial proportions the shape classifier scores.
type Measurements struct {
	FaceLength     float64 `json:"faceLength"`
	FaceWidth      float64 `json:"faceWidth"`
	ForeheadWidth  float64 `json:"foreheadWidth"`
	CheekboneWidth float64 `json:"cheekboneWidth"`
	JawWidth       float64 `json:"jawWidth"`
	JawlineAngle   float64 `json:"jawlineAngle"`
}

func ratio(num, den, fallback float64) float64 {
	if den <= 0 || num <= 0 {
		return fallback
	}
	return num / den
}

// LengthWidth is face length over face width, 1.0 when unknown.
func (m Measurements) LengthWidth() float64 { return ratio(m.FaceLength, m.FaceWidth, 1) }

// ForeheadJaw is forehead width over jaw width, 1.0 when unknown.
func (m Measurements) ForeheadJaw() float64 { return ratio(m.ForeheadWidth, m.JawWidth, 1) }

func (m Measurements) angle() float64 {
	if m.JawlineAngle <= 0 {
		return 140
	}
	return m.JawlineAngle
}

// ClassifyShape scores every face shape and returns the best match.
func ClassifyShape(m Measurements) FaceShape {
	lw := m.LengthWidth()
	fj := m.ForeheadJaw()
	angle := m.angle()
	cheekForehead := ratio(m.CheekboneWidth, m.ForeheadWidth, 1)
	cheekJaw := ratio(m.CheekboneWidth, m.JawWidth, 1)

	scores := make(map[Shape]float64, len(Shapes))

	var s float64
	if lw < 1.1 {
		s += 0.4
	}
	if fj > 0.95 && fj < 1.05 {
		s += 0.3
	}
	if angle < 145 {
		s += 0.3
	}
	scores[ShapeRound] = s

	s = 0
	if lw > 1.3 {
		s += 0.6 + min(0.4, (lw-1.3)*0.5)
	}
	if fj > 0.9 && fj < 1.1 {
		s += 0.2
	}
	scores[ShapeOblong] = s

	s = 0
	if fj > 1.1 {
		s += 0.5 + min(0.3, (fj-1.1)*0.3)
	}
	if lw > 1.0 {
		s += 0.2
	}
	scores[ShapeHeart] = s

	s = 0
	if fj < 0.9 {
		s += 0.5 + min(0.3, (0.9-fj)*0.3)
	}
	scores[ShapeTriangle] = s

	s = 0
	if angle > 150 {
		s += 0.4
	}
	if lw < 1.15 {
		s += 0.3
	}
	if fj > 0.9 && fj < 1.1 {
		s += 0.3
	}
	scores[ShapeSquare] = s

	s = 0
	if cheekForehead > 1.05 {
		s += 0.4
	}
	if cheekJaw > 1.05 {
		s += 0.4
	}
	if lw > 1.1 && lw < 1.3 {
		s += 0.2
	}
	scores[ShapeDiamond] = s

	s = 0
	if lw > 1.1 && lw < 1.3 {
		s += 0.4
	}
	if fj > 0.9 && fj < 1.1 {
		s += 0.3
	}
	if angle > 130 && angle < 150 {
		s += 0.3
	}
	scores[ShapeOval] = s

	best := Shapes[0]
	for _, shape := range Shapes[1:] {
		if scores[shape] > scores[best] {
			best = shape
		}
	}

	ranked := make([]float64, 0, len(scores))
	for _, v := range scores {
		ranked = append(ranked, v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ranked)))
	confidence := min(0.98, 0.7+(ranked[0]-ranked[1])*0.5)

	if scores[best] < 0.3 {
		best = ShapeOval
		confidence = 0.6
	}

	return FaceShape{
		Shape:      best,
		Confidence: confidence,
		Reasoning:  shapeReasoning(best, lw, fj, angle),
	}
}

func shapeReasoning(shape Shape, lw, fj, angle float64) string {
	switch shape {
	case ShapeOval:
		return fmt.Sprintf("Balanced proportions with length-to-width ratio of %.2f", lw)
	case ShapeRound:
		return fmt.Sprintf("Face length approximately equals width (ratio: %.2f)", lw)
	case ShapeSquare:
		return fmt.Sprintf("Angular jawline (%.0f°) with balanced proportions", angle)
	case ShapeHeart:
		return fmt.Sprintf("Forehead wider than jaw (ratio: %.2f)", fj)
	case ShapeOblong:
		return fmt.Sprintf("Face length significantly exceeds width (ratio: %.2f)", lw)
	case ShapeDiamond:
		return "Prominent cheekbones with narrower forehead and jaw"
	case ShapeTriangle:
		return fmt.Sprintf("Jaw wider than forehead (ratio: %.2f)", fj)
	default:
		return ""
	}
}
