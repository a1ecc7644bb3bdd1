package util

import (
	"errors"
	"path"
	"strings"
)

// ErrInvalidFileName is returned for empty names or names containing traversal patterns.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/bmp":  ".bmp",
	"image/tiff": ".tiff",
	"image/webp": ".webp",
}

// ImageExtension returns the canonical extension for an image MIME type,
// falling back to the extension already present in fileName.
func ImageExtension(mimeType, fileName string) string {
	if ext, ok := imageExtensions[strings.ToLower(strings.TrimSpace(mimeType))]; ok {
		return ext
	}
	return strings.ToLower(path.Ext(fileName))
}
