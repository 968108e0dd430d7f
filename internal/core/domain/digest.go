package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the hexadecimal SHA-256 digest of data.
// It is the cache key stored in an environment's cache marker.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
