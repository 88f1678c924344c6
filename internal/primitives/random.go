package primitives

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the source of randomness for key generation and IV
// generation. Swappable only from within this package via
// SetRandReaderForTesting.
var randReader io.Reader = rand.Reader

// RandomBytes returns n cryptographically random bytes drawn from randReader.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}

// GenerateIV returns a fresh 12-byte AES-GCM nonce.
func GenerateIV() ([]byte, error) {
	return RandomBytes(AESNonceSize)
}

const randomStringAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRandomString returns an alphanumeric identifier of length n over
// [A-Za-z0-9], indexing the 62-character alphabet by each random byte modulo
// 62. There is no rejection step, so the distribution is not exactly
// uniform: the first 8 alphabet characters are slightly more likely. It is
// acceptable for non-secret identifiers only.
func GenerateRandomString(n int) (string, error) {
	raw, err := RandomBytes(n)
	if err != nil {
		return "", err
	}
	out := make([]byte, n)
	for i, b := range raw {
		out[i] = randomStringAlphabet[int(b)%len(randomStringAlphabet)]
	}
	return string(out), nil
}
