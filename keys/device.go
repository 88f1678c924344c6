package keys

import (
	"encoding/json"

	"github.com/takoserver/encrypt-ink-go/internal/primitives"
)

const keyTypeDeviceKey = "deviceKey"

// GenerateDeviceKey produces a fresh 32-byte symmetric device key. Device
// keys carry no algorithm, timestamp, or session-uuid field.
func GenerateDeviceKey() (string, error) {
	key, err := primitives.RandomBytes(primitives.AESKeySize)
	if err != nil {
		return "", err
	}
	rec := DeviceKey{
		KeyType: keyTypeDeviceKey,
		Key:     encodeBase64(key),
	}
	out, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// IsValidDeviceKey checks the discriminator for a device-key record.
func IsValidDeviceKey(record string) bool {
	var r DeviceKey
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeDeviceKey && decodedLenIs(r.Key, primitives.AESKeySize)
}

// EncryptDataDeviceKey encrypts plaintext under a device key.
func EncryptDataDeviceKey(record, plaintext string) (string, bool) {
	if !IsValidDeviceKey(record) {
		return "", false
	}
	var r DeviceKey
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return "", false
	}
	return encryptSymmetric(r.Key, plaintext, record, keyTypeDeviceKey)
}

// DecryptDataDeviceKey decrypts an encrypted envelope produced by
// EncryptDataDeviceKey.
func DecryptDataDeviceKey(record, encryptedEnvelope string) (string, bool) {
	if !IsValidDeviceKey(record) {
		return "", false
	}
	var r DeviceKey
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return "", false
	}
	return decryptSymmetric(r.Key, encryptedEnvelope, keyTypeDeviceKey)
}
