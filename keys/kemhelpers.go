package keys

import (
	"github.com/takoserver/encrypt-ink-go/envelope"
	"github.com/takoserver/encrypt-ink-go/internal/primitives"
)

// encryptKEM runs the hybrid KEM+AEAD pipeline against the base64 public
// key keyB64 and wraps the result in an encrypted envelope tagged
// roleKeyType, with keyHash derived from keyHashInput (the public-key
// record's own text, per spec §4.3).
func encryptKEM(keyB64, plaintext, keyHashInput, roleKeyType string) (string, bool) {
	keyBytes, ok := decodeBase64(keyB64)
	if !ok {
		return "", false
	}
	result, err := primitives.HybridEncrypt(keyBytes, []byte(plaintext))
	if err != nil {
		return "", false
	}
	hashBytes, ok := decodeBase64(primitives.KeyHash(keyHashInput))
	if !ok {
		return "", false
	}
	env, err := envelope.NewEncryptedEnvelope(roleKeyType, hashBytes, result.EncryptedData, result.IV, primitives.AlgorithmAESGCM,
		envelope.EncryptedEnvelopeOptions{CipherText: result.CipherText})
	if err != nil {
		return "", false
	}
	return env, true
}

// decryptKEM reverses encryptKEM. It does not check that the envelope's
// keyHash matches the supplied private key (spec §9 i): that binding is
// the caller's responsibility.
func decryptKEM(keyB64, encryptedEnvelope, roleKeyType string) (string, bool) {
	env, ok := envelope.ParseEncryptedEnvelope(encryptedEnvelope)
	if !ok || !env.IsValid(roleKeyType, true) {
		return "", false
	}
	keyBytes, ok := decodeBase64(keyB64)
	if !ok {
		return "", false
	}
	encryptedData, err := env.DecodedEncryptedData()
	if err != nil {
		return "", false
	}
	cipherText, err := env.DecodedCipherText()
	if err != nil || cipherText == nil {
		return "", false
	}
	iv, err := env.DecodedIV()
	if err != nil {
		return "", false
	}
	plaintext, err := primitives.HybridDecrypt(keyBytes, encryptedData, cipherText, iv)
	if err != nil {
		return "", false
	}
	return string(plaintext), true
}

// encryptSymmetric runs AES-256-GCM against the base64 symmetric key
// keyB64 and wraps the result in an encrypted envelope tagged
// roleKeyType, with no cipherText field.
func encryptSymmetric(keyB64, plaintext, keyHashInput, roleKeyType string) (string, bool) {
	keyBytes, ok := decodeBase64(keyB64)
	if !ok {
		return "", false
	}
	iv, err := primitives.GenerateIV()
	if err != nil {
		return "", false
	}
	encryptedData, err := primitives.AEADEncrypt(keyBytes, iv, []byte(plaintext))
	if err != nil {
		return "", false
	}
	hashBytes, ok := decodeBase64(primitives.KeyHash(keyHashInput))
	if !ok {
		return "", false
	}
	env, err := envelope.NewEncryptedEnvelope(roleKeyType, hashBytes, encryptedData, iv, primitives.AlgorithmAESGCM,
		envelope.EncryptedEnvelopeOptions{})
	if err != nil {
		return "", false
	}
	return env, true
}

// decryptSymmetric reverses encryptSymmetric.
func decryptSymmetric(keyB64, encryptedEnvelope, roleKeyType string) (string, bool) {
	env, ok := envelope.ParseEncryptedEnvelope(encryptedEnvelope)
	if !ok || !env.IsValid(roleKeyType, false) {
		return "", false
	}
	keyBytes, ok := decodeBase64(keyB64)
	if !ok {
		return "", false
	}
	encryptedData, err := env.DecodedEncryptedData()
	if err != nil {
		return "", false
	}
	iv, err := env.DecodedIV()
	if err != nil {
		return "", false
	}
	plaintext, err := primitives.AEADDecrypt(keyBytes, iv, encryptedData)
	if err != nil {
		return "", false
	}
	return string(plaintext), true
}
