package keys

import "testing"

func TestGenerateAccountKey(t *testing.T) {
	masterPub, masterPriv, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}

	pub, priv, signEnv, ok := GenerateAccountKey(masterPub, masterPriv)
	if !ok {
		t.Fatal("GenerateAccountKey failed")
	}
	if !IsValidAccountKeyPublic(pub) {
		t.Error("expected account public record to validate")
	}
	if !IsValidAccountKeyPrivate(priv) {
		t.Error("expected account private record to validate")
	}
	if !VerifyDataMasterKey(masterPub, signEnv, pub) {
		t.Error("expected master signature over account public record to verify")
	}

	plaintext := "hello account key"
	env, encrypted := EncryptDataAccountKey(pub, plaintext)
	if !encrypted {
		t.Fatal("EncryptDataAccountKey failed")
	}
	decrypted, decryptedOK := DecryptDataAccountKey(priv, env)
	if !decryptedOK {
		t.Fatal("DecryptDataAccountKey failed")
	}
	if decrypted != plaintext {
		t.Fatalf("round trip mismatch: got %q want %q", decrypted, plaintext)
	}
}

func TestDecryptDataAccountKey_RejectsForeignRole(t *testing.T) {
	masterPub, masterPriv, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}
	accPub, accPriv, _, ok := GenerateAccountKey(masterPub, masterPriv)
	if !ok {
		t.Fatal("GenerateAccountKey failed")
	}

	roomKeyRecord, ok := GenerateRoomKey(testSessionUUID)
	if !ok {
		t.Fatal("GenerateRoomKey failed")
	}
	roomEnv, ok := EncryptDataRoomKey(roomKeyRecord, "payload")
	if !ok {
		t.Fatal("EncryptDataRoomKey failed")
	}

	if _, ok := DecryptDataAccountKey(accPriv, roomEnv); ok {
		t.Fatal("expected roomKey envelope to be rejected by account key decryption")
	}
	_ = accPub
}
