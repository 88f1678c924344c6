package message

import (
	"encoding/json"

	"github.com/takoserver/encrypt-ink-go/keys"
	"github.com/takoserver/encrypt-ink-go/schema"
)

// freshnessWindowMillis is the maximum allowed skew between a message's
// timestamp and the server-supplied timestamp at decrypt time (spec §8).
const freshnessWindowMillis = 60000

// Metadata carries the header fields an encrypted message is built from.
type Metadata struct {
	Channel   string
	Timestamp uint64
	IsLarge   bool
	Original  *string
}

type encryptedMessageRecord struct {
	Encrypted bool    `json:"encrypted"`
	Value     string  `json:"value"`
	Channel   string  `json:"channel"`
	Timestamp uint64  `json:"timestamp"`
	IsLarge   bool    `json:"isLarge"`
	Original  *string `json:"original,omitempty"`
	RoomID    string  `json:"roomid"`
}

// EncryptMessage validates roomKeyRecord and identityPrivRecord, encrypts
// plaintextValue under the room key, assembles the encrypted-message
// record from metadata and roomid, and signs the serialized record with
// the identity private key using identityPubHash as the signer's key
// hash. Returns the serialized message and its signed envelope.
func EncryptMessage(plaintextValue string, metadata Metadata, roomKeyRecord, identityPrivRecord, identityPubHash, roomid string) (messageText, signEnvelope string, ok bool) {
	if !keys.IsValidRoomKey(roomKeyRecord) || !keys.IsValidIdentityKeyPrivate(identityPrivRecord) {
		return "", "", false
	}

	encryptedValue, ok := keys.EncryptDataRoomKey(roomKeyRecord, plaintextValue)
	if !ok {
		return "", "", false
	}

	rec := encryptedMessageRecord{
		Encrypted: true,
		Value:     encryptedValue,
		Channel:   metadata.Channel,
		Timestamp: metadata.Timestamp,
		IsLarge:   metadata.IsLarge,
		Original:  metadata.Original,
		RoomID:    roomid,
	}
	msgJSON, err := json.Marshal(rec)
	if err != nil {
		return "", "", false
	}
	messageText = string(msgJSON)

	signEnvelope, signed := keys.SignDataIdentityKey(identityPrivRecord, messageText, identityPubHash)
	if !signed {
		return "", "", false
	}

	return messageText, signEnvelope, true
}

func timestampDelta(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// DecryptMessage verifies signText against messageText under
// identityPubRecord, enforces the roomid binding and the freshness
// window against serverTimestamp, and, for an encrypted message,
// validates and decrypts value under roomKeyRecord. A cleartext message's
// value passes through unchanged; an encrypted message's decrypted
// content is re-wrapped into a {type, content} value using the same
// field-presence sniff ("text" vs "uri") as the original implementation.
// Any failure returns an absent ("", false) result.
func DecryptMessage(messageText, signText string, serverTimestamp uint64, roomKeyRecord, identityPubRecord, roomid string) (string, bool) {
	if !keys.IsValidIdentityKeyPublic(identityPubRecord) {
		return "", false
	}
	if !keys.VerifyDataIdentityKey(identityPubRecord, signText, messageText) {
		return "", false
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(messageText), &m); err != nil {
		return "", false
	}

	msgRoomID, ok := m["roomid"].(string)
	if !ok || msgRoomID != roomid {
		return "", false
	}

	tsFloat, ok := m["timestamp"].(float64)
	if !ok {
		return "", false
	}
	timestamp := uint64(tsFloat)
	if timestampDelta(timestamp, serverTimestamp) > freshnessWindowMillis {
		return "", false
	}

	encrypted, ok := m["encrypted"].(bool)
	if !ok {
		return "", false
	}

	if !encrypted {
		return messageText, true
	}

	encryptedValue, ok := m["value"].(string)
	if !ok {
		return "", false
	}
	if !keys.IsValidRoomKey(roomKeyRecord) {
		return "", false
	}
	if !schema.ValidateEncryptedEnvelope(encryptedValue, "roomKey", false) {
		return "", false
	}
	plaintext, ok := keys.DecryptDataRoomKey(roomKeyRecord, encryptedValue)
	if !ok {
		return "", false
	}

	m["value"] = sniffDecryptedValue(plaintext)
	m["encrypted"] = false

	out, err := json.Marshal(m)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// sniffDecryptedValue reconstructs a {type, content} value object from
// decrypted room-key content by checking for the presence of a "text" or
// "uri" field, defaulting to "text". This mirrors the ad hoc
// content-type recovery the original implementation performs on decrypt,
// since the encrypted envelope itself carries no content-type
// discriminator.
func sniffDecryptedValue(plaintext string) Value {
	var parsed map[string]any
	valueType := "text"
	if err := json.Unmarshal([]byte(plaintext), &parsed); err == nil {
		if _, hasText := parsed["text"]; hasText {
			valueType = "text"
		} else if _, hasURI := parsed["uri"]; hasURI {
			valueType = "image"
		}
	}
	return Value{Type: valueType, Content: plaintext}
}

// RecipientAccountKey pairs a user identifier with their account public
// key record, the input shape for EncryptRoomKeyWithAccountKeys.
type RecipientAccountKey struct {
	UserID     string `json:"userId"`
	AccountKey string `json:"accountKey"`
}

// RecipientEncryptedRoomKey is one entry of EncryptRoomKeyWithAccountKeys'
// output: a recipient's user id paired with the room key re-wrapped under
// their account key.
type RecipientEncryptedRoomKey struct {
	UserID        string `json:"userId"`
	EncryptedData string `json:"encryptedData"`
}

// EncryptRoomKeyWithAccountKeys encrypts the serialized roomKeyRecord
// under each recipient's account key, emitting one entry per successful
// encryption in input order. Recipients whose account key fails to
// validate or encrypt are dropped silently (spec §4.5, §8 fan-out
// preservation).
func EncryptRoomKeyWithAccountKeys(users []RecipientAccountKey, roomKeyRecord string) []RecipientEncryptedRoomKey {
	out := make([]RecipientEncryptedRoomKey, 0, len(users))
	for _, u := range users {
		encrypted, ok := keys.EncryptDataAccountKey(u.AccountKey, roomKeyRecord)
		if !ok {
			continue
		}
		out = append(out, RecipientEncryptedRoomKey{UserID: u.UserID, EncryptedData: encrypted})
	}
	return out
}
