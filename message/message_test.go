package message

import (
	"encoding/json"
	"testing"

	"github.com/takoserver/encrypt-ink-go/keys"
)

const testRoomUUID = "018f1c4b-7b8a-7c9d-8e0f-1a2b3c4d5e6f"
const testSessionUUID = "018f1c4b-7b8a-7c9d-8e0f-1a2b3c4d5e71"

func setupRoomAndIdentity(t *testing.T) (roomKeyRecord, identityPubRecord, identityPrivRecord string) {
	t.Helper()
	masterPub, masterPriv, err := keys.GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}
	identityPub, identityPriv, _, ok := keys.GenerateIdentityKey(testSessionUUID, masterPub, masterPriv)
	if !ok {
		t.Fatal("GenerateIdentityKey failed")
	}
	roomKeyRecord, ok = keys.GenerateRoomKey(testRoomUUID)
	if !ok {
		t.Fatal("GenerateRoomKey failed")
	}
	return roomKeyRecord, identityPub, identityPriv
}

func TestEncryptDecryptMessage_RoundTrip(t *testing.T) {
	roomKeyRecord, identityPub, identityPriv := setupRoomAndIdentity(t)

	value, ok := CreateTextContent("hello world")
	if !ok {
		t.Fatal("CreateTextContent failed")
	}

	meta := Metadata{Channel: "general", Timestamp: 1000, IsLarge: false}
	msgText, signEnv, ok := EncryptMessage(value, meta, roomKeyRecord, identityPriv, identityPub, testRoomUUID)
	if !ok {
		t.Fatal("EncryptMessage failed")
	}

	decrypted, ok := DecryptMessage(msgText, signEnv, 1000, roomKeyRecord, identityPub, testRoomUUID)
	if !ok {
		t.Fatal("DecryptMessage failed")
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(decrypted), &m); err != nil {
		t.Fatalf("unmarshal decrypted message: %v", err)
	}
	if encrypted, _ := m["encrypted"].(bool); encrypted {
		t.Fatal("expected decrypted message to report encrypted=false")
	}

	valueJSON, err := json.Marshal(m["value"])
	if err != nil {
		t.Fatalf("marshal value: %v", err)
	}
	var v Value
	if err := json.Unmarshal(valueJSON, &v); err != nil {
		t.Fatalf("unmarshal value: %v", err)
	}
	if v.Type != "text" {
		t.Fatalf("expected value.type=text, got %q", v.Type)
	}

	var tc TextContent
	if err := json.Unmarshal([]byte(v.Content), &tc); err != nil {
		t.Fatalf("unmarshal value.content: %v", err)
	}
	if tc.Text != "hello world" {
		t.Fatalf("expected content text=%q, got %q", "hello world", tc.Text)
	}
}

func TestEncryptDecryptMessage_ImageRoundTrip(t *testing.T) {
	roomKeyRecord, identityPub, identityPriv := setupRoomAndIdentity(t)

	value, ok := CreateImageContent("https://example.test/photo.jpg", MediaMetadata{Filename: "photo.jpg", MimeType: "image/jpeg"})
	if !ok {
		t.Fatal("CreateImageContent failed")
	}

	meta := Metadata{Channel: "general", Timestamp: 1000, IsLarge: false}
	msgText, signEnv, ok := EncryptMessage(value, meta, roomKeyRecord, identityPriv, identityPub, testRoomUUID)
	if !ok {
		t.Fatal("EncryptMessage failed")
	}

	decrypted, ok := DecryptMessage(msgText, signEnv, 1000, roomKeyRecord, identityPub, testRoomUUID)
	if !ok {
		t.Fatal("DecryptMessage failed")
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(decrypted), &m); err != nil {
		t.Fatalf("unmarshal decrypted message: %v", err)
	}
	valueJSON, err := json.Marshal(m["value"])
	if err != nil {
		t.Fatalf("marshal value: %v", err)
	}
	var v Value
	if err := json.Unmarshal(valueJSON, &v); err != nil {
		t.Fatalf("unmarshal value: %v", err)
	}
	if v.Type != "image" {
		t.Fatalf("expected value.type=image (sniffed from uri field), got %q", v.Type)
	}

	var mc MediaContent
	if err := json.Unmarshal([]byte(v.Content), &mc); err != nil {
		t.Fatalf("unmarshal value.content: %v", err)
	}
	if mc.URI != "https://example.test/photo.jpg" {
		t.Fatalf("expected uri to round-trip, got %q", mc.URI)
	}
}

func TestDecryptMessage_FreshnessWindowBoundary(t *testing.T) {
	roomKeyRecord, identityPub, identityPriv := setupRoomAndIdentity(t)
	value, ok := CreateTextContent("within window")
	if !ok {
		t.Fatal("CreateTextContent failed")
	}
	meta := Metadata{Channel: "general", Timestamp: 1000, IsLarge: false}
	msgText, signEnv, ok := EncryptMessage(value, meta, roomKeyRecord, identityPriv, identityPub, testRoomUUID)
	if !ok {
		t.Fatal("EncryptMessage failed")
	}

	if _, ok := DecryptMessage(msgText, signEnv, 1000+60000, roomKeyRecord, identityPub, testRoomUUID); !ok {
		t.Fatal("expected exactly-60000ms skew to be accepted")
	}
	if _, ok := DecryptMessage(msgText, signEnv, 1000+60001, roomKeyRecord, identityPub, testRoomUUID); ok {
		t.Fatal("expected 60001ms skew to be rejected")
	}
}

func TestDecryptMessage_RejectsRoomIDMismatch(t *testing.T) {
	roomKeyRecord, identityPub, identityPriv := setupRoomAndIdentity(t)
	value, ok := CreateTextContent("bound to a room")
	if !ok {
		t.Fatal("CreateTextContent failed")
	}
	meta := Metadata{Channel: "general", Timestamp: 1000, IsLarge: false}
	msgText, signEnv, ok := EncryptMessage(value, meta, roomKeyRecord, identityPriv, identityPub, testRoomUUID)
	if !ok {
		t.Fatal("EncryptMessage failed")
	}

	if _, ok := DecryptMessage(msgText, signEnv, 1000, roomKeyRecord, identityPub, "a-different-room"); ok {
		t.Fatal("expected roomid mismatch to be rejected")
	}
}

func TestDecryptMessage_RejectsTamperedSignature(t *testing.T) {
	roomKeyRecord, identityPub, identityPriv := setupRoomAndIdentity(t)
	value, ok := CreateTextContent("tamper me")
	if !ok {
		t.Fatal("CreateTextContent failed")
	}
	meta := Metadata{Channel: "general", Timestamp: 1000, IsLarge: false}
	msgText, _, ok := EncryptMessage(value, meta, roomKeyRecord, identityPriv, identityPub, testRoomUUID)
	if !ok {
		t.Fatal("EncryptMessage failed")
	}

	otherMasterPub, otherMasterPriv, err := keys.GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}
	_, otherIdentityPriv, _, ok := keys.GenerateIdentityKey(testSessionUUID, otherMasterPub, otherMasterPriv)
	if !ok {
		t.Fatal("GenerateIdentityKey failed")
	}
	forgedEnv, signed := keys.SignDataIdentityKey(otherIdentityPriv, msgText, identityPub)
	if !signed {
		t.Fatal("SignDataIdentityKey failed")
	}

	if _, ok := DecryptMessage(msgText, forgedEnv, 1000, roomKeyRecord, identityPub, testRoomUUID); ok {
		t.Fatal("expected signature from a foreign identity key to be rejected")
	}
}

func TestEncryptRoomKeyWithAccountKeys_OrderAndDrop(t *testing.T) {
	masterPub, masterPriv, err := keys.GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}
	accPubA, accPrivA, _, ok := keys.GenerateAccountKey(masterPub, masterPriv)
	if !ok {
		t.Fatal("GenerateAccountKey failed")
	}
	accPubB, accPrivB, _, ok := keys.GenerateAccountKey(masterPub, masterPriv)
	if !ok {
		t.Fatal("GenerateAccountKey failed")
	}
	roomKeyRecord, ok := keys.GenerateRoomKey(testRoomUUID)
	if !ok {
		t.Fatal("GenerateRoomKey failed")
	}

	users := []RecipientAccountKey{
		{UserID: "alice", AccountKey: accPubA},
		{UserID: "mallory", AccountKey: "not-a-valid-account-key"},
		{UserID: "bob", AccountKey: accPubB},
	}

	out := EncryptRoomKeyWithAccountKeys(users, roomKeyRecord)
	if len(out) != 2 {
		t.Fatalf("expected 2 entries (mallory dropped), got %d", len(out))
	}
	if out[0].UserID != "alice" || out[1].UserID != "bob" {
		t.Fatalf("expected order alice,bob; got %s,%s", out[0].UserID, out[1].UserID)
	}

	decryptedA, ok := keys.DecryptDataAccountKey(accPrivA, out[0].EncryptedData)
	if !ok || decryptedA != roomKeyRecord {
		t.Fatal("expected alice's entry to decrypt back to the room key record")
	}
	decryptedB, ok := keys.DecryptDataAccountKey(accPrivB, out[1].EncryptedData)
	if !ok || decryptedB != roomKeyRecord {
		t.Fatal("expected bob's entry to decrypt back to the room key record")
	}
}
