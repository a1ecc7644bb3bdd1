package scans

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnsupportedType = errors.New("file must be an image")
	ErrImageTooSmall   = errors.New("image is too small")
	ErrImageTooLarge   = errors.New("image is too large")
	ErrNoFace          = errors.New("no face detected")
)
