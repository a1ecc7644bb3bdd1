package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey returns a filesystem-safe identifier for a user ID.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// ShortUserKey is the first 16 hex characters of HashUserKey, used in object key paths.
func ShortUserKey(s string) string {
	return HashUserKey(s)[:16]
}
