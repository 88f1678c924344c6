package keys

import (
	"encoding/json"

	"github.com/takoserver/encrypt-ink-go/internal/primitives"
)

const keyTypeRoomKey = "roomKey"

// GenerateRoomKey produces a fresh 32-byte symmetric room key scoped to
// roomUUID.
func GenerateRoomKey(roomUUID string) (string, bool) {
	if !IsValidUUIDv7(roomUUID) {
		return "", false
	}
	key, err := primitives.RandomBytes(primitives.AESKeySize)
	if err != nil {
		return "", false
	}

	rec := RoomKey{
		KeyType:     keyTypeRoomKey,
		Key:         encodeBase64(key),
		Algorithm:   primitives.AlgorithmAESGCM,
		Timestamp:   nowMillis(),
		SessionUUID: roomUUID,
	}
	out, err := json.Marshal(rec)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// IsValidRoomKey checks the discriminator triple for a room-key record.
func IsValidRoomKey(record string) bool {
	var r RoomKey
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return false
	}
	return r.KeyType == keyTypeRoomKey &&
		r.Algorithm == primitives.AlgorithmAESGCM &&
		decodedLenIs(r.Key, primitives.AESKeySize) &&
		IsValidUUIDv7(r.SessionUUID)
}

// EncryptDataRoomKey encrypts plaintext under a room key.
func EncryptDataRoomKey(record, plaintext string) (string, bool) {
	if !IsValidRoomKey(record) {
		return "", false
	}
	var r RoomKey
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return "", false
	}
	return encryptSymmetric(r.Key, plaintext, record, keyTypeRoomKey)
}

// DecryptDataRoomKey decrypts an encrypted envelope produced by
// EncryptDataRoomKey.
func DecryptDataRoomKey(record, encryptedEnvelope string) (string, bool) {
	if !IsValidRoomKey(record) {
		return "", false
	}
	var r RoomKey
	if err := json.Unmarshal([]byte(record), &r); err != nil {
		return "", false
	}
	return decryptSymmetric(r.Key, encryptedEnvelope, keyTypeRoomKey)
}
