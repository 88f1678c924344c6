package keys

import (
	"encoding/json"

	"github.com/takoserver/encrypt-ink-go/internal/primitives"
)

const (
	keyTypeAccountKeyPublic  = "accountKeyPublic"
	keyTypeAccountKeyPrivate = "accountKeyPrivate"
	keyTypeAccountKeyRole    = "accountKey"
)

// GenerateAccountKey produces a fresh ML-KEM-768 account key pair, signed
// by the supplied master key pair. Unlike GenerateIdentityKey, the signed
// envelope's keyHash is the hash of the whole masterPublicRecord text, not
// its inner key field — this is the other side of the intentional
// asymmetry documented in spec §9 (ii).
func GenerateAccountKey(masterPublicRecord, masterPrivateRecord string) (publicRecord, privateRecord, signedEnvelope string, ok bool) {
	if !IsValidMasterKeyPublic(masterPublicRecord) || !IsValidMasterKeyPrivate(masterPrivateRecord) {
		return "", "", "", false
	}

	pub, priv, err := primitives.KEMGenerate()
	if err != nil {
		return "", "", "", false
	}

	ts := nowMillis()
	pubRec := AccountKeyPublic{
		KeyType:   keyTypeAccountKeyPublic,
		Key:       encodeBase64(pub),
		Algorithm: primitives.AlgorithmMLKEM768,
		Timestamp: ts,
	}
	privRec := AccountKeyPrivate{
		KeyType:   keyTypeAccountKeyPrivate,
		Key:       encodeBase64(priv),
		Algorithm: primitives.AlgorithmMLKEM768,
		Timestamp: ts,
	}

	pubJSON, err := json.Marshal(pubRec)
	if err != nil {
		return "", "", "", false
	}
	privJSON, err := json.Marshal(privRec)
	if err != nil {
		return "", "", "", false
	}

	env, signed := SignDataMasterKey(masterPrivateRecord, string(pubJSON), masterPublicRecord)
	if !signed {
		return "", "", "", false
	}

	return string(pubJSON), string(privJSON), env, true
}

// IsValidAccountKeyPublic checks the discriminator triple for an account
// public-key record.
func IsValidAccountKeyPublic(record string) bool {
	var r AccountKeyPublic
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeAccountKeyPublic &&
		r.Algorithm == primitives.AlgorithmMLKEM768 &&
		decodedLenIs(r.Key, primitives.MLKEMPublicKeySize)
}

// IsValidAccountKeyPrivate checks the discriminator triple for an account
// private-key record.
func IsValidAccountKeyPrivate(record string) bool {
	var r AccountKeyPrivate
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeAccountKeyPrivate &&
		r.Algorithm == primitives.AlgorithmMLKEM768 &&
		decodedLenIs(r.Key, primitives.MLKEMPrivateKeySize)
}

// EncryptDataAccountKey encrypts plaintext under an account public key.
func EncryptDataAccountKey(publicRecord, plaintext string) (string, bool) {
	if !IsValidAccountKeyPublic(publicRecord) {
		return "", false
	}
	var r AccountKeyPublic
	if err := json.Unmarshal([]byte(publicRecord), &r); err != nil {
		return "", false
	}
	return encryptKEM(r.Key, plaintext, publicRecord, keyTypeAccountKeyRole)
}

// DecryptDataAccountKey decrypts an encrypted envelope produced by
// EncryptDataAccountKey.
func DecryptDataAccountKey(privateRecord, encryptedEnvelope string) (string, bool) {
	if !IsValidAccountKeyPrivate(privateRecord) {
		return "", false
	}
	var r AccountKeyPrivate
	if err := json.Unmarshal([]byte(privateRecord), &r); err != nil {
		return "", false
	}
	return decryptKEM(r.Key, encryptedEnvelope, keyTypeAccountKeyRole)
}
