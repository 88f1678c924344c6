package keys

import (
	"github.com/takoserver/encrypt-ink-go/envelope"
	"github.com/takoserver/encrypt-ink-go/internal/primitives"
)

// signDSA65 signs data with the base64 private key keyB64 and wraps the
// result in a signed envelope tagged domainKeyType, using keyHashInput as
// the hash preimage.
func signDSA65(keyB64, data, keyHashInput, domainKeyType string) (string, bool) {
	keyBytes, ok := decodeBase64(keyB64)
	if !ok {
		return "", false
	}
	sig, err := primitives.DSA65Sign(keyBytes, []byte(data))
	if err != nil {
		return "", false
	}
	hashBytes, ok := decodeBase64(primitives.KeyHash(keyHashInput))
	if !ok {
		return "", false
	}
	env, err := envelope.NewSignedEnvelope(domainKeyType, sig, hashBytes, primitives.AlgorithmMLDSA65)
	if err != nil {
		return "", false
	}
	return env, true
}

// verifyDSA65 verifies signedEnvelope against data under the base64
// public key keyB64, expecting domain tag domainKeyType.
func verifyDSA65(keyB64, signedEnvelope, data, domainKeyType string) bool {
	env, ok := envelope.ParseSignedEnvelope(signedEnvelope)
	if !ok || !env.IsValid(domainKeyType, primitives.AlgorithmMLDSA65) {
		return false
	}
	keyBytes, ok := decodeBase64(keyB64)
	if !ok {
		return false
	}
	sig, err := env.DecodedSignature()
	if err != nil {
		return false
	}
	valid, err := primitives.DSA65Verify(keyBytes, []byte(data), sig)
	return err == nil && valid
}
