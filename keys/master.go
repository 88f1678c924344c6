package keys

import (
	"encoding/json"
	"fmt"

	"github.com/takoserver/encrypt-ink-go/envelope"
	"github.com/takoserver/encrypt-ink-go/internal/primitives"
)

const (
	keyTypeMasterKeyPublic  = "masterKeyPublic"
	keyTypeMasterKeyPrivate = "masterKeyPrivate"
	keyTypeMasterKeySign    = "masterKey"
)

// GenerateMasterKey produces a fresh ML-DSA-87 master key pair. The master
// role is the root of the signing hierarchy: nothing signs it.
func GenerateMasterKey() (publicRecord, privateRecord string, err error) {
	pub, priv, err := primitives.DSA87Generate()
	if err != nil {
		return "", "", fmt.Errorf("generate master key: %w", err)
	}

	pubRec := MasterKeyPublic{
		KeyType:   keyTypeMasterKeyPublic,
		Key:       encodeBase64(pub),
		Algorithm: primitives.AlgorithmMLDSA87,
	}
	privRec := MasterKeyPrivate{
		KeyType:   keyTypeMasterKeyPrivate,
		Key:       encodeBase64(priv),
		Algorithm: primitives.AlgorithmMLDSA87,
	}

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

// IsValidMasterKeyPublic checks the discriminator triple for a master
// public-key record.
func IsValidMasterKeyPublic(record string) bool {
	var r MasterKeyPublic
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeMasterKeyPublic &&
		r.Algorithm == primitives.AlgorithmMLDSA87 &&
		decodedLenIs(r.Key, primitives.MLDSA87PublicKeySize)
}

// IsValidMasterKeyPrivate checks the discriminator triple for a master
// private-key record.
func IsValidMasterKeyPrivate(record string) bool {
	var r MasterKeyPrivate
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeMasterKeyPrivate &&
		r.Algorithm == primitives.AlgorithmMLDSA87 &&
		decodedLenIs(r.Key, primitives.MLDSA87PrivateKeySize)
}

// SignDataMasterKey signs data with a master private key, producing a
// signed envelope whose keyHash is derived from the caller-supplied
// reference string.
func SignDataMasterKey(privateRecord, data, keyHashInput string) (string, bool) {
	if !IsValidMasterKeyPrivate(privateRecord) {
		return "", false
	}
	var r MasterKeyPrivate
	if err := json.Unmarshal([]byte(privateRecord), &r); err != nil {
		return "", false
	}
	keyBytes, ok := decodeBase64(r.Key)
	if !ok {
		return "", false
	}

	sig, err := primitives.DSA87Sign(keyBytes, []byte(data))
	if err != nil {
		return "", false
	}
	hash := primitives.KeyHash(keyHashInput)
	hashBytes, ok := decodeBase64(hash)
	if !ok {
		return "", false
	}

	env, err := envelope.NewSignedEnvelope(keyTypeMasterKeySign, sig, hashBytes, primitives.AlgorithmMLDSA87)
	if err != nil {
		return "", false
	}
	return env, true
}

// VerifyDataMasterKey verifies a signed envelope produced by
// SignDataMasterKey against the master public record.
func VerifyDataMasterKey(publicRecord, signedEnvelope, data string) bool {
	if !IsValidMasterKeyPublic(publicRecord) {
		return false
	}
	env, ok := envelope.ParseSignedEnvelope(signedEnvelope)
	if !ok || !env.IsValid(keyTypeMasterKeySign, primitives.AlgorithmMLDSA87) {
		return false
	}
	var r MasterKeyPublic
	if err := json.Unmarshal([]byte(publicRecord), &r); err != nil {
		return false
	}
	keyBytes, ok := decodeBase64(r.Key)
	if !ok {
		return false
	}
	sig, err := env.DecodedSignature()
	if err != nil {
		return false
	}
	valid, err := primitives.DSA87Verify(keyBytes, []byte(data), sig)
	return err == nil && valid
}
