package keys

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/takoserver/encrypt-ink-go/internal/primitives"
)

type genericKeyRecord struct {
	KeyType string `json:"keyType"`
	Key     string `json:"key"`
}

const signProbeMessage = "test"

// IsValidSignPair reports whether pub and priv are a matching DSA key
// pair, without peeking at the discriminator beyond distinguishing the
// master role: master-role records are probed with ML-DSA-87, every
// other signing role with ML-DSA-65. Validity is a functional test — a
// probe message is signed with priv and verified against pub — not a
// length check.
func IsValidSignPair(pub, priv string) bool {
	var pubRec, privRec genericKeyRecord
	if err := json.Unmarshal([]byte(pub), &pubRec); err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(priv), &privRec); err != nil {
		return false
	}

	pubKey, ok := decodeBase64(pubRec.Key)
	if !ok {
		return false
	}
	privKey, ok := decodeBase64(privRec.Key)
	if !ok {
		return false
	}

	isMaster := strings.HasPrefix(pubRec.KeyType, "masterKey") || strings.HasPrefix(privRec.KeyType, "masterKey")

	if isMaster {
		sig, err := primitives.DSA87Sign(privKey, []byte(signProbeMessage))
		if err != nil {
			return false
		}
		valid, err := primitives.DSA87Verify(pubKey, []byte(signProbeMessage), sig)
		return err == nil && valid
	}

	sig, err := primitives.DSA65Sign(privKey, []byte(signProbeMessage))
	if err != nil {
		return false
	}
	valid, err := primitives.DSA65Verify(pubKey, []byte(signProbeMessage), sig)
	return err == nil && valid
}

// IsValidEncryptPair reports whether pub and priv are a matching ML-KEM-768
// key pair: encapsulating against pub and decapsulating the resulting
// ciphertext with priv must yield the same shared secret.
func IsValidEncryptPair(pub, priv string) bool {
	var pubRec, privRec genericKeyRecord
	if err := json.Unmarshal([]byte(pub), &pubRec); err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(priv), &privRec); err != nil {
		return false
	}

	pubKey, ok := decodeBase64(pubRec.Key)
	if !ok {
		return false
	}
	privKey, ok := decodeBase64(privRec.Key)
	if !ok {
		return false
	}

	ciphertext, shared1, err := primitives.KEMEncapsulate(pubKey)
	if err != nil {
		return false
	}
	shared2, err := primitives.KEMDecapsulate(privKey, ciphertext)
	if err != nil {
		return false
	}
	return bytes.Equal(shared1, shared2)
}

// GenerateRandomString produces an alphanumeric identifier of length n,
// acceptable for non-secret identifiers only (spec §4.2).
func GenerateRandomString(n int) (string, error) {
	return primitives.GenerateRandomString(n)
}
