package face

import (
	"context"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	KindPipeline = "pipeline"
	KindFixed    = "fixed"

	defaultMaxDimension = 320
)

// Analyzer turns a decoded image into an analysis result.
type Analyzer interface {
	Name() string
	Analyze(ctx context.Context, img image.Image) (Result, error)
}

// NewAnalyzer returns the fixed analyzer for "fixed" or "mock" and the image pipeline otherwise.
func NewAnalyzer(kind string) Analyzer {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindFixed, "mock":
		return FixedAnalyzer{}
	default:
		return NewPipeline()
	}
}

// Decode reads an image honoring its EXIF orientation.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Pipeline detects the face and runs skin tone, face shape and hair coverage analysis.
type Pipeline struct {
	MaxDimension int
}

func NewPipeline() *Pipeline {
	return &Pipeline{MaxDimension: defaultMaxDimension}
}

func (p *Pipeline) Name() string { return KindPipeline }

func (p *Pipeline) Analyze(ctx context.Context, img image.Image) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	dim := p.MaxDimension
	if dim <= 0 {
		dim = defaultMaxDimension
	}
	work := imaging.Fit(img, dim, dim, imaging.Linear)

	det, ok := Detect(work)
	if !ok {
		return Result{Detected: false}, nil
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	skin := SkinToneOf(work, det.Box)
	shape := ClassifyShape(det.Measurements)
	hair := HairCoverageOf(work, det.Box)

	return Result{
		Detected:          true,
		SkinTone:          skin,
		FaceShape:         shape,
		HairCoverage:      hair,
		ColorSeason:       SeasonFor(skin.Type, skin.Undertone),
		OverallConfidence: overall(skin.Confidence, shape.Confidence, hair.Confidence),
	}, nil
}

// FixedAnalyzer ignores the image and returns the literal result.
type FixedAnalyzer struct{}

func (FixedAnalyzer) Name() string { return KindFixed }

func (FixedAnalyzer) Analyze(ctx context.Context, _ image.Image) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Fixed(), nil
}
