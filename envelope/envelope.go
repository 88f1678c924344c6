// Package envelope defines the two wire record shapes that carry signed
// and encrypted payloads between key managers and their callers: the
// signed envelope and the encrypted envelope (spec §3).
package envelope

import (
	"encoding/base64"
	"encoding/json"
)

// SignedEnvelope binds a DSA signature to the domain that produced it and
// to the signer's public key by hash. keyType is the domain tag without a
// Public/Private suffix (e.g. "masterKey", "identityKey").
type SignedEnvelope struct {
	KeyType   string `json:"keyType"`
	Signature string `json:"signature"`
	KeyHash   string `json:"keyHash"`
	Algorithm string `json:"algorithm"`
}

// EncryptedEnvelope binds an AEAD ciphertext to the role that produced it
// and, for KEM-based roles, to the KEM ciphertext needed to recover the
// shared secret. CipherText is nil for purely symmetric roles (room,
// device) and present for KEM-based roles (account, share, migrate).
type EncryptedEnvelope struct {
	KeyType       string  `json:"keyType"`
	KeyHash       string  `json:"keyHash"`
	EncryptedData string  `json:"encryptedData"`
	IV            string  `json:"iv"`
	Algorithm     string  `json:"algorithm"`
	CipherText    *string `json:"cipherText,omitempty"`
}

// NewSignedEnvelope builds and serializes a signed envelope.
func NewSignedEnvelope(keyType string, signature, keyHash []byte, algorithm string) (string, error) {
	env := SignedEnvelope{
		KeyType:   keyType,
		Signature: base64.StdEncoding.EncodeToString(signature),
		KeyHash:   base64.StdEncoding.EncodeToString(keyHash),
		Algorithm: algorithm,
	}
	out, err := json.Marshal(env)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ParseSignedEnvelope decodes a serialized signed envelope.
func ParseSignedEnvelope(s string) (*SignedEnvelope, bool) {
	var env SignedEnvelope
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		return nil, false
	}
	return &env, true
}

// DecodedSignature returns the decoded signature bytes.
func (e *SignedEnvelope) DecodedSignature() ([]byte, error) {
	return base64.StdEncoding.DecodeString(e.Signature)
}

// DecodedKeyHash returns the decoded key-hash bytes.
func (e *SignedEnvelope) DecodedKeyHash() ([]byte, error) {
	return base64.StdEncoding.DecodeString(e.KeyHash)
}

// IsValid checks the signed-envelope structural invariant (spec §3 iii):
// keyType matches the expected domain tag and algorithm matches the
// domain's DSA parameter set.
func (e *SignedEnvelope) IsValid(expectedKeyType, expectedAlgorithm string) bool {
	if e.KeyType != expectedKeyType || e.Algorithm != expectedAlgorithm {
		return false
	}
	keyHash, err := e.DecodedKeyHash()
	if err != nil || len(keyHash) != 32 {
		return false
	}
	if _, err := e.DecodedSignature(); err != nil {
		return false
	}
	return true
}

// EncryptedEnvelopeOptions configures NewEncryptedEnvelope for KEM-based
// roles, which additionally carry a KEM ciphertext.
type EncryptedEnvelopeOptions struct {
	CipherText []byte // nil for symmetric roles
}

// NewEncryptedEnvelope builds and serializes an encrypted envelope.
func NewEncryptedEnvelope(keyType string, keyHash, encryptedData, iv []byte, algorithm string, opts EncryptedEnvelopeOptions) (string, error) {
	env := EncryptedEnvelope{
		KeyType:       keyType,
		KeyHash:       base64.StdEncoding.EncodeToString(keyHash),
		EncryptedData: base64.StdEncoding.EncodeToString(encryptedData),
		IV:            base64.StdEncoding.EncodeToString(iv),
		Algorithm:     algorithm,
	}
	if opts.CipherText != nil {
		ct := base64.StdEncoding.EncodeToString(opts.CipherText)
		env.CipherText = &ct
	}
	out, err := json.Marshal(env)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ParseEncryptedEnvelope decodes a serialized encrypted envelope.
func ParseEncryptedEnvelope(s string) (*EncryptedEnvelope, bool) {
	var env EncryptedEnvelope
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		return nil, false
	}
	return &env, true
}

// DecodedKeyHash returns the decoded key-hash bytes.
func (e *EncryptedEnvelope) DecodedKeyHash() ([]byte, error) {
	return base64.StdEncoding.DecodeString(e.KeyHash)
}

// DecodedIV returns the decoded IV bytes.
func (e *EncryptedEnvelope) DecodedIV() ([]byte, error) {
	return base64.StdEncoding.DecodeString(e.IV)
}

// DecodedEncryptedData returns the decoded AEAD ciphertext bytes.
func (e *EncryptedEnvelope) DecodedEncryptedData() ([]byte, error) {
	return base64.StdEncoding.DecodeString(e.EncryptedData)
}

// DecodedCipherText returns the decoded KEM ciphertext bytes, or nil if the
// envelope carries none.
func (e *EncryptedEnvelope) DecodedCipherText() ([]byte, error) {
	if e.CipherText == nil {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(*e.CipherText)
}

// IsValid checks the encrypted-envelope structural invariant (spec §3 ii):
// keyType matches the expected role, keyHash decodes to exactly 32 bytes,
// iv decodes to exactly 12 bytes, encryptedData decodes, and cipherText is
// present iff requireCipherText is true.
func (e *EncryptedEnvelope) IsValid(expectedKeyType string, requireCipherText bool) bool {
	if e.KeyType != expectedKeyType {
		return false
	}
	keyHash, err := e.DecodedKeyHash()
	if err != nil || len(keyHash) != 32 {
		return false
	}
	iv, err := e.DecodedIV()
	if err != nil || len(iv) != 12 {
		return false
	}
	if _, err := e.DecodedEncryptedData(); err != nil {
		return false
	}
	if requireCipherText {
		ct, err := e.DecodedCipherText()
		if err != nil || ct == nil {
			return false
		}
	} else if e.CipherText != nil {
		return false
	}
	return true
}
