package keys

import "testing"

func TestGenerateMasterKey_Discriminators(t *testing.T) {
	pub, priv, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}

	if !IsValidMasterKeyPublic(pub) {
		t.Error("expected fresh public record to validate")
	}
	if !IsValidMasterKeyPrivate(priv) {
		t.Error("expected fresh private record to validate")
	}
	if IsValidMasterKeyPublic(priv) {
		t.Error("expected private record to fail public validation")
	}
	if IsValidMasterKeyPrivate(pub) {
		t.Error("expected public record to fail private validation")
	}
}

func TestMasterKey_SignVerifyRoundTrip(t *testing.T) {
	pub, priv, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}

	data := "payload to be attested"
	env, ok := SignDataMasterKey(priv, data, pub)
	if !ok {
		t.Fatal("SignDataMasterKey failed")
	}
	if !VerifyDataMasterKey(pub, env, data) {
		t.Fatal("expected signature to verify")
	}
	if VerifyDataMasterKey(pub, env, data+"tampered") {
		t.Fatal("expected signature over different data to fail")
	}
}

func TestIsValidMasterKeyPublic_RejectsTruncatedKey(t *testing.T) {
	pub, _, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey: %v", err)
	}
	var r MasterKeyPublic
	mustUnmarshal(t, pub, &r)

	keyBytes, ok := decodeBase64(r.Key)
	if !ok {
		t.Fatal("decode key")
	}
	r.Key = encodeBase64(keyBytes[:len(keyBytes)-1])
	truncated := mustMarshal(t, r)
	if IsValidMasterKeyPublic(truncated) {
		t.Fatal("expected truncated key to be rejected")
	}
}
