package keys

import (
	"encoding/json"

	"github.com/takoserver/encrypt-ink-go/internal/primitives"
)

const (
	keyTypeMigrateKeyPublic  = "migrateKeyPublic"
	keyTypeMigrateKeyPrivate = "migrateKeyPrivate"
	keyTypeMigrateKeyRole    = "migrateKey"

	keyTypeMigrateSignKeyPublic  = "migrateSignKeyPublic"
	keyTypeMigrateSignKeyPrivate = "migrateSignKeyPrivate"
	keyTypeMigrateSignKeySign    = "migrateSignKey"
)

// GenerateMigrateKey produces a fresh ML-KEM-768 migrate key pair. Unlike
// account and share keys, migrate keys carry no master signature and no
// algorithm field: account migration is bootstrapped out of band, before
// any master key relationship is established.
func GenerateMigrateKey() (publicRecord, privateRecord string, err error) {
	pub, priv, err := primitives.KEMGenerate()
	if err != nil {
		return "", "", err
	}

	ts := nowMillis()
	pubRec := MigrateKeyPublic{KeyType: keyTypeMigrateKeyPublic, Key: encodeBase64(pub), Timestamp: ts}
	privRec := MigrateKeyPrivate{KeyType: keyTypeMigrateKeyPrivate, Key: encodeBase64(priv), Timestamp: ts}

	pubJSON, err := json.Marshal(pubRec)
	if err != nil {
		return "", "", err
	}
	privJSON, err := json.Marshal(privRec)
	if err != nil {
		return "", "", err
	}
	return string(pubJSON), string(privJSON), nil
}

// IsValidMigrateKeyPublic checks the discriminator for a migrate
// public-key record.
func IsValidMigrateKeyPublic(record string) bool {
	var r MigrateKeyPublic
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeMigrateKeyPublic && decodedLenIs(r.Key, primitives.MLKEMPublicKeySize)
}

// IsValidMigrateKeyPrivate checks the discriminator for a migrate
// private-key record.
func IsValidMigrateKeyPrivate(record string) bool {
	var r MigrateKeyPrivate
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeMigrateKeyPrivate && decodedLenIs(r.Key, primitives.MLKEMPrivateKeySize)
}

// EncryptDataMigrateKey encrypts plaintext under a migrate public key.
func EncryptDataMigrateKey(publicRecord, plaintext string) (string, bool) {
	if !IsValidMigrateKeyPublic(publicRecord) {
		return "", false
	}
	var r MigrateKeyPublic
	if err := json.Unmarshal([]byte(publicRecord), &r); err != nil {
		return "", false
	}
	return encryptKEM(r.Key, plaintext, publicRecord, keyTypeMigrateKeyRole)
}

// DecryptDataMigrateKey decrypts an encrypted envelope produced by
// EncryptDataMigrateKey.
func DecryptDataMigrateKey(privateRecord, encryptedEnvelope string) (string, bool) {
	if !IsValidMigrateKeyPrivate(privateRecord) {
		return "", false
	}
	var r MigrateKeyPrivate
	if err := json.Unmarshal([]byte(privateRecord), &r); err != nil {
		return "", false
	}
	return decryptKEM(r.Key, encryptedEnvelope, keyTypeMigrateKeyRole)
}

// GenerateMigrateSignKey produces a fresh ML-DSA-65 migrate-signing key
// pair, with the same no-master-signature, no-algorithm-field shape as
// GenerateMigrateKey.
func GenerateMigrateSignKey() (publicRecord, privateRecord string, err error) {
	pub, priv, err := primitives.DSA65Generate()
	if err != nil {
		return "", "", err
	}

	ts := nowMillis()
	pubRec := MigrateSignKeyPublic{KeyType: keyTypeMigrateSignKeyPublic, Key: encodeBase64(pub), Timestamp: ts}
	privRec := MigrateSignKeyPrivate{KeyType: keyTypeMigrateSignKeyPrivate, Key: encodeBase64(priv), Timestamp: ts}

	pubJSON, err := json.Marshal(pubRec)
	if err != nil {
		return "", "", err
	}
	privJSON, err := json.Marshal(privRec)
	if err != nil {
		return "", "", err
	}
	return string(pubJSON), string(privJSON), nil
}

// IsValidMigrateSignKeyPublic checks the discriminator for a
// migrate-sign public-key record.
func IsValidMigrateSignKeyPublic(record string) bool {
	var r MigrateSignKeyPublic
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeMigrateSignKeyPublic && decodedLenIs(r.Key, primitives.MLDSA65PublicKeySize)
}

// IsValidMigrateSignKeyPrivate checks the discriminator for a
// migrate-sign private-key record.
func IsValidMigrateSignKeyPrivate(record string) bool {
	var r MigrateSignKeyPrivate
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeMigrateSignKeyPrivate && decodedLenIs(r.Key, primitives.MLDSA65PrivateKeySize)
}

// SignDataMigrateSignKey signs data with a migrate-sign private key.
func SignDataMigrateSignKey(privateRecord, data, keyHashInput string) (string, bool) {
	if !IsValidMigrateSignKeyPrivate(privateRecord) {
		return "", false
	}
	var r MigrateSignKeyPrivate
	if err := json.Unmarshal([]byte(privateRecord), &r); err != nil {
		return "", false
	}
	return signDSA65(r.Key, data, keyHashInput, keyTypeMigrateSignKeySign)
}

// VerifyDataMigrateSignKey verifies a signed envelope produced by
// SignDataMigrateSignKey against the migrate-sign public record.
func VerifyDataMigrateSignKey(publicRecord, signedEnvelope, data string) bool {
	if !IsValidMigrateSignKeyPublic(publicRecord) {
		return false
	}
	var r MigrateSignKeyPublic
	if err := json.Unmarshal([]byte(publicRecord), &r); err != nil {
		return false
	}
	return verifyDSA65(r.Key, signedEnvelope, data, keyTypeMigrateSignKeySign)
}
