package flow

import (
	"context"
	"errors"

	"lookcircuit-backend/internal/face"
)

// Camera is the device camera.
type Camera interface {
	RequestPermission(ctx context.Context) (bool, error)
	Capture(ctx context.Context) (string, error)
}

// Library is the device media library. Pick returns ok=false when the user cancels.
type Library interface {
	RequestPermission(ctx context.Context) (bool, error)
	Pick(ctx context.Context) (uri string, ok bool, err error)
}

// AnalysisSource produces the analysis for a captured or picked image.
type AnalysisSource interface {
	Analyze(ctx context.Context, imageURI string) (face.Result, error)
}

// FixedAnalysis returns face.Fixed for every image.
type FixedAnalysis struct{}

func (FixedAnalysis) Analyze(ctx context.Context, _ string) (face.Result, error) {
	if err := ctx.Err(); err != nil {
		return face.Result{}, err
	}
	return face.Fixed(), nil
}

// noDevice denies every permission request.
type noDevice struct{}

func (noDevice) RequestPermission(context.Context) (bool, error) { return false, nil }

func (noDevice) Capture(context.Context) (string, error) { return "", errors.New("no camera") }

func (noDevice) Pick(context.Context) (string, bool, error) { return "", false, nil }
