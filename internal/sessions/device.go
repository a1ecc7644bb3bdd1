package sessions

import (
	"context"
	"errors"
	"strings"

	"lookcircuit-backend/internal/face"
	"lookcircuit-backend/internal/scans"
)

const scanScheme = "scan://"

var errScriptedCapture = errors.New("capture reported as failed")

// scriptedDevice answers camera and library calls from the event being applied.
type scriptedDevice struct {
	granted  bool
	imageURI string
	failed   bool
}

func (d *scriptedDevice) script(ev Event) {
	d.granted = ev.granted()
	d.imageURI = strings.TrimSpace(ev.ImageURI)
	d.failed = ev.Failed
}

func (d *scriptedDevice) RequestPermission(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return d.granted, nil
}

func (d *scriptedDevice) Capture(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if d.failed {
		return "", errScriptedCapture
	}
	return d.imageURI, nil
}

func (d *scriptedDevice) Pick(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	return d.imageURI, d.imageURI != "", nil
}

// scanSource resolves scan:// URIs to stored scans of the session owner.
// Any other URI gets the fixed result.
type scanSource struct {
	repo   scans.Repo
	userID string
}

func (s scanSource) Analyze(ctx context.Context, imageURI string) (face.Result, error) {
	if err := ctx.Err(); err != nil {
		return face.Result{}, err
	}
	id, ok := strings.CutPrefix(imageURI, scanScheme)
	if !ok || s.repo == nil {
		return face.Fixed(), nil
	}
	scan, err := s.repo.GetByID(ctx, s.userID, id)
	if err != nil {
		return face.Result{}, err
	}
	if scan.Result == nil {
		return face.Result{Detected: false}, nil
	}
	return *scan.Result, nil
}
