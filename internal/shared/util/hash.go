package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey returns a short filesystem-safe identifier for a user ID.
// Export artifact keys embed it so raw identities never appear in paths.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}
