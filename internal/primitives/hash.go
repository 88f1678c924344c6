package primitives

import (
	"crypto/sha256"
	"encoding/base64"
)

// KeyHash returns the standard, padded base64 encoding of the SHA-256
// digest of the UTF-8 bytes of s. It depends only on s.
func KeyHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return base64.StdEncoding.EncodeToString(sum[:])
}
