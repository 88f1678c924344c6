package keys

import (
	"encoding/json"

	"github.com/takoserver/encrypt-ink-go/internal/primitives"
)

const (
	keyTypeServerKeyPublic  = "serverKeyPublic"
	keyTypeServerKeyPrivate = "serverKeyPrivate"
	keyTypeServerKeySign    = "serverKey"
)

// GenerateServerKey produces a fresh ML-DSA-65 server key pair. The server
// role is an external collaborator: it is self-issued and pinned by the
// host application out of band, so no master signature is produced.
func GenerateServerKey() (publicRecord, privateRecord string, err error) {
	pub, priv, err := primitives.DSA65Generate()
	if err != nil {
		return "", "", err
	}

	ts := nowMillis()
	pubRec := ServerKeyPublic{
		KeyType:   keyTypeServerKeyPublic,
		Key:       encodeBase64(pub),
		Algorithm: primitives.AlgorithmMLDSA65,
		Timestamp: ts,
	}
	privRec := ServerKeyPrivate{
		KeyType:   keyTypeServerKeyPrivate,
		Key:       encodeBase64(priv),
		Algorithm: primitives.AlgorithmMLDSA65,
		Timestamp: ts,
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

// IsValidServerKeyPublic checks the discriminator triple for a server
// public-key record.
func IsValidServerKeyPublic(record string) bool {
	var r ServerKeyPublic
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeServerKeyPublic &&
		r.Algorithm == primitives.AlgorithmMLDSA65 &&
		decodedLenIs(r.Key, primitives.MLDSA65PublicKeySize)
}

// IsValidServerKeyPrivate checks the discriminator triple for a server
// private-key record.
func IsValidServerKeyPrivate(record string) bool {
	var r ServerKeyPrivate
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeServerKeyPrivate &&
		r.Algorithm == primitives.AlgorithmMLDSA65 &&
		decodedLenIs(r.Key, primitives.MLDSA65PrivateKeySize)
}

// SignDataServerKey signs data with a server private key.
func SignDataServerKey(privateRecord, data, keyHashInput string) (string, bool) {
	if !IsValidServerKeyPrivate(privateRecord) {
		return "", false
	}
	var r ServerKeyPrivate
	if err := json.Unmarshal([]byte(privateRecord), &r); err != nil {
		return "", false
	}
	return signDSA65(r.Key, data, keyHashInput, keyTypeServerKeySign)
}

// VerifyDataServerKey verifies a signed envelope produced by
// SignDataServerKey against the server public record.
func VerifyDataServerKey(publicRecord, signedEnvelope, data string) bool {
	if !IsValidServerKeyPublic(publicRecord) {
		return false
	}
	var r ServerKeyPublic
	if err := json.Unmarshal([]byte(publicRecord), &r); err != nil {
		return false
	}
	return verifyDSA65(r.Key, signedEnvelope, data, keyTypeServerKeySign)
}
