package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the SHA256 hex digest of a password. Only the digest
// is ever persisted; login compares digests, never raw passwords.
func HashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}
