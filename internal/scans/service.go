package scans

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"lookcircuit-backend/internal/face"
	"lookcircuit-backend/internal/shared/metrics"
	"lookcircuit-backend/internal/shared/storage/object"
	"lookcircuit-backend/internal/shared/telemetry"
	"lookcircuit-backend/internal/shared/util"
)

const (
	MinDimension   = 480
	MaxDimension   = 8000
	MaxPixels      = 40_000_000
	MaxUploadBytes = 10 << 20

	thumbnailSize = 256
)

// Upload is an image submitted for analysis.
type Upload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// Service stores scan images and runs the face analyzer on them.
type Service struct {
	Repo     Repo
	Store    object.ObjectStore
	Analyzer face.Analyzer
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Analyze validates and stores the upload, analyzes it and records the scan.
// A scan without a detected face is recorded and returned together with ErrNoFace.
func (s *Service) Analyze(ctx context.Context, userID string, up Upload) (Scan, error) {
	if strings.TrimSpace(userID) == "" || up.Body == nil {
		return Scan{}, ErrInvalidInput
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(up.ContentType)), "image/") {
		return Scan{}, ErrUnsupportedType
	}

	data, err := io.ReadAll(io.LimitReader(up.Body, MaxUploadBytes+1))
	if err != nil {
		return Scan{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return Scan{}, fmt.Errorf("%w: larger than %d bytes", ErrInvalidInput, MaxUploadBytes)
	}
	if err := checkDimensions(data); err != nil {
		return Scan{}, err
	}
	img, err := face.Decode(bytes.NewReader(data))
	if err != nil {
		return Scan{}, fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}
	bounds := img.Bounds()

	metrics.IncScanStarted()
	start := time.Now()

	fileName := up.FileName
	if strings.TrimSpace(fileName) == "" {
		fileName = "scan"
	}
	if path.Ext(fileName) == "" {
		fileName += util.ImageExtension(up.ContentType, fileName)
	}
	key, _, mimeType, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		metrics.IncScanFailed()
		return Scan{}, fmt.Errorf("store image: %w", err)
	}

	scan := Scan{
		ID:        uuid.NewString(),
		UserID:    userID,
		ImageKey:  key,
		MimeType:  mimeType,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Analyzer:  s.Analyzer.Name(),
		CreatedAt: s.now(),
	}

	thumbKey, err := s.saveThumbnail(ctx, key, img)
	if err != nil {
		telemetry.Warn("scan.thumbnail_failed", map[string]any{"scan_id": scan.ID, "error": err.Error()})
	}
	scan.ThumbnailKey = thumbKey

	res, err := s.Analyzer.Analyze(ctx, img)
	if err == nil && res.Detected {
		err = face.Validate(res)
	}
	metrics.ObserveScanDurationMs(float64(time.Since(start).Milliseconds()))

	switch {
	case err != nil:
		metrics.IncScanFailed()
		msg := err.Error()
		scan.Status = StatusFailed
		scan.ErrorMessage = &msg
		if recErr := s.Repo.Create(ctx, scan); recErr != nil {
			return Scan{}, errors.Join(err, recErr)
		}
		telemetry.Error("scan.failed", map[string]any{"scan_id": scan.ID, "analyzer": scan.Analyzer, "error": msg})
		return scan, fmt.Errorf("analyze: %w", err)
	case !res.Detected:
		metrics.IncScanNoFace()
		scan.Status = StatusNoFace
		if err := s.Repo.Create(ctx, scan); err != nil {
			return Scan{}, err
		}
		telemetry.Info("scan.no_face", map[string]any{"scan_id": scan.ID, "analyzer": scan.Analyzer})
		return scan, ErrNoFace
	}

	scan.Status = StatusCompleted
	scan.Result = &res
	if err := s.Repo.Create(ctx, scan); err != nil {
		metrics.IncScanFailed()
		return Scan{}, err
	}
	metrics.IncScanCompleted()
	telemetry.Info("scan.completed", map[string]any{
		"scan_id":     scan.ID,
		"analyzer":    scan.Analyzer,
		"season":      res.ColorSeason,
		"face_shape":  res.FaceShape.Shape,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return scan, nil
}

// checkDimensions reads only the image header so oversized images are rejected before decoding.
func checkDimensions(data []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}
	w, h := cfg.Width, cfg.Height
	if w < MinDimension || h < MinDimension {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrImageTooSmall, w, h, MinDimension, MinDimension)
	}
	if w > MaxDimension || h > MaxDimension || w*h > MaxPixels {
		return fmt.Errorf("%w: %dx%d, limit is %dx%d and %d pixels", ErrImageTooLarge, w, h, MaxDimension, MaxDimension, MaxPixels)
	}
	return nil
}

func (s *Service) saveThumbnail(ctx context.Context, imageKey string, img image.Image) (string, error) {
	thumb := imaging.Thumbnail(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}
	key := imageKey + ".thumb.jpg"
	if _, err := s.Store.SaveWithKey(ctx, key, "image/jpeg", &buf); err != nil {
		return "", fmt.Errorf("store thumbnail: %w", err)
	}
	return key, nil
}

// Get returns a scan owned by userID.
func (s *Service) Get(ctx context.Context, userID, scanID string) (Scan, error) {
	if strings.TrimSpace(scanID) == "" {
		return Scan{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, scanID)
}

// Thumbnail opens the stored JPEG thumbnail of a scan owned by userID.
// The caller closes the reader.
func (s *Service) Thumbnail(ctx context.Context, userID, scanID string) (io.ReadCloser, error) {
	scan, err := s.Get(ctx, userID, scanID)
	if err != nil {
		return nil, err
	}
	if scan.ThumbnailKey == "" {
		return nil, ErrNotFound
	}
	rc, err := s.Store.Open(ctx, scan.ThumbnailKey)
	if errors.Is(err, object.ErrNotFound) {
		return nil, fmt.Errorf("%w: thumbnail missing", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open thumbnail: %w", err)
	}
	return rc, nil
}

// List returns the user's scans, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Scan, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
