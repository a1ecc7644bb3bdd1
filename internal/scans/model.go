package scans

import (
	"time"

	"lookcircuit-backend/internal/face"
)

const (
	StatusCompleted = "completed"
	StatusNoFace    = "no_face"
	StatusFailed    = "failed"
)

// Scan is one uploaded image and the analysis run on it.
type Scan struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	ImageKey     string       `json:"imageKey"`
	ThumbnailKey string       `json:"thumbnailKey,omitempty"`
	MimeType     string       `json:"mimeType"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	Status       string       `json:"status"`
	Analyzer     string       `json:"analyzer"`
	Result       *face.Result `json:"result,omitempty"`
	ErrorMessage *string      `json:"errorMessage,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}
