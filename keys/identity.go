package keys

import (
	"encoding/json"

	"github.com/takoserver/encrypt-ink-go/internal/primitives"
)

const (
	keyTypeIdentityKeyPublic  = "identityKeyPublic"
	keyTypeIdentityKeyPrivate = "identityKeyPrivate"
	keyTypeIdentityKeySign    = "identityKey"
)

// GenerateIdentityKey produces a fresh ML-DSA-65 identity key pair scoped
// to sessionUUID, signed by the supplied master key pair. The signed
// envelope's keyHash is the hash of masterPublicRecord's inner key field,
// not the whole record — this mirrors the original implementation's
// account-key/identity-key asymmetry (spec §9 ii) and is intentional, not
// unified with GenerateAccountKey's convention.
func GenerateIdentityKey(sessionUUID, masterPublicRecord, masterPrivateRecord string) (publicRecord, privateRecord, signedEnvelope string, ok bool) {
	if !IsValidUUIDv7(sessionUUID) {
		return "", "", "", false
	}
	if !IsValidMasterKeyPublic(masterPublicRecord) || !IsValidMasterKeyPrivate(masterPrivateRecord) {
		return "", "", "", false
	}

	var masterPub MasterKeyPublic
	if err := json.Unmarshal([]byte(masterPublicRecord), &masterPub); err != nil {
		return "", "", "", false
	}

	pub, priv, err := primitives.DSA65Generate()
	if err != nil {
		return "", "", "", false
	}

	ts := nowMillis()
	pubRec := IdentityKeyPublic{
		KeyType:     keyTypeIdentityKeyPublic,
		Key:         encodeBase64(pub),
		Algorithm:   primitives.AlgorithmMLDSA65,
		Timestamp:   ts,
		SessionUUID: sessionUUID,
	}
	privRec := IdentityKeyPrivate{
		KeyType:     keyTypeIdentityKeyPrivate,
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

	env, signed := SignDataMasterKey(masterPrivateRecord, string(pubJSON), masterPub.Key)
	if !signed {
		return "", "", "", false
	}

	return string(pubJSON), string(privJSON), env, true
}

// IsValidIdentityKeyPublic checks the discriminator triple for an identity
// public-key record.
func IsValidIdentityKeyPublic(record string) bool {
	var r IdentityKeyPublic
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeIdentityKeyPublic &&
		r.Algorithm == primitives.AlgorithmMLDSA65 &&
		decodedLenIs(r.Key, primitives.MLDSA65PublicKeySize) &&
		IsValidUUIDv7(r.SessionUUID)
}

// IsValidIdentityKeyPrivate checks the discriminator triple for an
// identity private-key record.
func IsValidIdentityKeyPrivate(record string) bool {
	var r IdentityKeyPrivate
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeIdentityKeyPrivate &&
		r.Algorithm == primitives.AlgorithmMLDSA65 &&
		decodedLenIs(r.Key, primitives.MLDSA65PrivateKeySize) &&
		IsValidUUIDv7(r.SessionUUID)
}

// SignDataIdentityKey signs data with an identity private key.
func SignDataIdentityKey(privateRecord, data, keyHashInput string) (string, bool) {
	if !IsValidIdentityKeyPrivate(privateRecord) {
		return "", false
	}
	var r IdentityKeyPrivate
	if err := json.Unmarshal([]byte(privateRecord), &r); err != nil {
		return "", false
	}
	return signDSA65(r.Key, data, keyHashInput, keyTypeIdentityKeySign)
}

// VerifyDataIdentityKey verifies a signed envelope produced by
// SignDataIdentityKey against the identity public record.
func VerifyDataIdentityKey(publicRecord, signedEnvelope, data string) bool {
	if !IsValidIdentityKeyPublic(publicRecord) {
		return false
	}
	var r IdentityKeyPublic
	if err := json.Unmarshal([]byte(publicRecord), &r); err != nil {
		return false
	}
	return verifyDSA65(r.Key, signedEnvelope, data, keyTypeIdentityKeySign)
}
