package keys

import "testing"

func TestGenerateRoomKey(t *testing.T) {
	record, ok := GenerateRoomKey(testSessionUUID)
	if !ok {
		t.Fatal("GenerateRoomKey failed")
	}
	if !IsValidRoomKey(record) {
		t.Error("expected room key record to validate")
	}

	plaintext := "room message payload"
	env, ok := EncryptDataRoomKey(record, plaintext)
	if !ok {
		t.Fatal("EncryptDataRoomKey failed")
	}
	decrypted, ok := DecryptDataRoomKey(record, env)
	if !ok {
		t.Fatal("DecryptDataRoomKey failed")
	}
	if decrypted != plaintext {
		t.Fatalf("round trip mismatch: got %q want %q", decrypted, plaintext)
	}
}

func TestGenerateRoomKey_RejectsNonV7UUID(t *testing.T) {
	if _, ok := GenerateRoomKey("not-a-uuid"); ok {
		t.Fatal("expected non-UUIDv7 room id to be rejected")
	}
}

func TestDecryptDataRoomKey_WrongKeyFails(t *testing.T) {
	recordA, ok := GenerateRoomKey(testSessionUUID)
	if !ok {
		t.Fatal("GenerateRoomKey failed")
	}
	recordB, ok := GenerateRoomKey("018f1c4b-7b8a-7c9d-8e0f-1a2b3c4d5e70")
	if !ok {
		t.Fatal("GenerateRoomKey failed")
	}

	env, ok := EncryptDataRoomKey(recordA, "secret")
	if !ok {
		t.Fatal("EncryptDataRoomKey failed")
	}
	if _, ok := DecryptDataRoomKey(recordB, env); ok {
		t.Fatal("expected decryption under a different room key to fail")
	}
}
