package keys

import (
	"encoding/json"

	"github.com/takoserver/encrypt-ink-go/internal/primitives"
)

const (
	keyTypeShareKeyPublic  = "shareKeyPublic"
	keyTypeShareKeyPrivate = "shareKeyPrivate"
	keyTypeShareKeyRole    = "shareKey"

	keyTypeShareSignKeyPublic  = "shareSignKeyPublic"
	keyTypeShareSignKeyPrivate = "shareSignKeyPrivate"
	keyTypeShareSignKeySign    = "shareSignKey"
)

// GenerateShareKey produces a fresh ML-KEM-768 share key pair scoped to
// sessionUUID, signed by masterPrivateRecord. The signing envelope's
// keyHash is the hash of masterPrivateRecord's own text — a third,
// distinct keyHash convention alongside GenerateAccountKey's (whole public
// record) and GenerateIdentityKey's (inner public key field). Per spec §9
// (ii), these conventions are caller-specific and are preserved rather
// than unified.
func GenerateShareKey(masterPrivateRecord, sessionUUID string) (publicRecord, privateRecord, signedEnvelope string, ok bool) {
	if !IsValidMasterKeyPrivate(masterPrivateRecord) || !IsValidUUIDv7(sessionUUID) {
		return "", "", "", false
	}

	pub, priv, err := primitives.KEMGenerate()
	if err != nil {
		return "", "", "", false
	}

	ts := nowMillis()
	pubRec := ShareKeyPublic{
		KeyType:     keyTypeShareKeyPublic,
		Key:         encodeBase64(pub),
		Algorithm:   primitives.AlgorithmMLKEM768,
		Timestamp:   ts,
		SessionUUID: sessionUUID,
	}
	privRec := ShareKeyPrivate{
		KeyType:     keyTypeShareKeyPrivate,
		Key:         encodeBase64(priv),
		Algorithm:   primitives.AlgorithmMLKEM768,
		Timestamp:   ts,
		SessionUUID: sessionUUID,
	}

	pubJSON, err := json.Marshal(pubRec)
	if err != nil {
		return "", "", "", false
	}
	privJSON, err := json.Marshal(privRec)
	if err != nil {
		return "", "", "", false
	}

	env, signed := SignDataMasterKey(masterPrivateRecord, string(pubJSON), masterPrivateRecord)
	if !signed {
		return "", "", "", false
	}
	return string(pubJSON), string(privJSON), env, true
}

// IsValidShareKeyPublic checks the discriminator triple for a share
// public-key record.
func IsValidShareKeyPublic(record string) bool {
	var r ShareKeyPublic
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeShareKeyPublic &&
		r.Algorithm == primitives.AlgorithmMLKEM768 &&
		decodedLenIs(r.Key, primitives.MLKEMPublicKeySize) &&
		IsValidUUIDv7(r.SessionUUID)
}

// IsValidShareKeyPrivate checks the discriminator triple for a share
// private-key record.
func IsValidShareKeyPrivate(record string) bool {
	var r ShareKeyPrivate
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeShareKeyPrivate &&
		r.Algorithm == primitives.AlgorithmMLKEM768 &&
		decodedLenIs(r.Key, primitives.MLKEMPrivateKeySize) &&
		IsValidUUIDv7(r.SessionUUID)
}

// EncryptDataShareKey encrypts plaintext under a share public key.
func EncryptDataShareKey(publicRecord, plaintext string) (string, bool) {
	if !IsValidShareKeyPublic(publicRecord) {
		return "", false
	}
	var r ShareKeyPublic
	if err := json.Unmarshal([]byte(publicRecord), &r); err != nil {
		return "", false
	}
	return encryptKEM(r.Key, plaintext, publicRecord, keyTypeShareKeyRole)
}

// DecryptDataShareKey decrypts an encrypted envelope produced by
// EncryptDataShareKey.
func DecryptDataShareKey(privateRecord, encryptedEnvelope string) (string, bool) {
	if !IsValidShareKeyPrivate(privateRecord) {
		return "", false
	}
	var r ShareKeyPrivate
	if err := json.Unmarshal([]byte(privateRecord), &r); err != nil {
		return "", false
	}
	return decryptKEM(r.Key, encryptedEnvelope, keyTypeShareKeyRole)
}

// GenerateShareSignKey produces a fresh ML-DSA-65 share-signing key pair
// scoped to sessionUUID, signed by masterPrivateRecord using the same
// keyHash convention as GenerateShareKey.
func GenerateShareSignKey(masterPrivateRecord, sessionUUID string) (publicRecord, privateRecord, signedEnvelope string, ok bool) {
	if !IsValidMasterKeyPrivate(masterPrivateRecord) || !IsValidUUIDv7(sessionUUID) {
		return "", "", "", false
	}

	pub, priv, err := primitives.DSA65Generate()
	if err != nil {
		return "", "", "", false
	}

	ts := nowMillis()
	pubRec := ShareSignKeyPublic{
		KeyType:     keyTypeShareSignKeyPublic,
		Key:         encodeBase64(pub),
		Algorithm:   primitives.AlgorithmMLDSA65,
		Timestamp:   ts,
		SessionUUID: sessionUUID,
	}
	privRec := ShareSignKeyPrivate{
		KeyType:     keyTypeShareSignKeyPrivate,
		Key:         encodeBase64(priv),
		Algorithm:   primitives.AlgorithmMLDSA65,
		Timestamp:   ts,
		SessionUUID: sessionUUID,
	}

	pubJSON, err := json.Marshal(pubRec)
	if err != nil {
		return "", "", "", false
	}
	privJSON, err := json.Marshal(privRec)
	if err != nil {
		return "", "", "", false
	}

	env, signed := SignDataMasterKey(masterPrivateRecord, string(pubJSON), masterPrivateRecord)
	if !signed {
		return "", "", "", false
	}
	return string(pubJSON), string(privJSON), env, true
}

// IsValidShareSignKeyPublic checks the discriminator triple for a
// share-sign public-key record.
func IsValidShareSignKeyPublic(record string) bool {
	var r ShareSignKeyPublic
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeShareSignKeyPublic &&
		r.Algorithm == primitives.AlgorithmMLDSA65 &&
		decodedLenIs(r.Key, primitives.MLDSA65PublicKeySize) &&
		IsValidUUIDv7(r.SessionUUID)
}

// IsValidShareSignKeyPrivate checks the discriminator triple for a
// share-sign private-key record.
func IsValidShareSignKeyPrivate(record string) bool {
	var r ShareSignKeyPrivate
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeShareSignKeyPrivate &&
		r.Algorithm == primitives.AlgorithmMLDSA65 &&
		decodedLenIs(r.Key, primitives.MLDSA65PrivateKeySize) &&
		IsValidUUIDv7(r.SessionUUID)
}

// SignDataShareSignKey signs data with a share-sign private key.
func SignDataShareSignKey(privateRecord, data, keyHashInput string) (string, bool) {
	if !IsValidShareSignKeyPrivate(privateRecord) {
		return "", false
	}
	var r ShareSignKeyPrivate
	if err := json.Unmarshal([]byte(privateRecord), &r); err != nil {
		return "", false
	}
	return signDSA65(r.Key, data, keyHashInput, keyTypeShareSignKeySign)
}

// VerifyDataShareSignKey verifies a signed envelope produced by
// SignDataShareSignKey against the share-sign public record.
func VerifyDataShareSignKey(publicRecord, signedEnvelope, data string) bool {
	if !IsValidShareSignKeyPublic(publicRecord) {
		return false
	}
	var r ShareSignKeyPublic
	if err := json.Unmarshal([]byte(publicRecord), &r); err != nil {
		return false
	}
	return verifyDSA65(r.Key, signedEnvelope, data, keyTypeShareSignKeySign)
}
