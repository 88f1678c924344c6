package keys

import "testing"

func TestGenerateServerKey(t *testing.T) {
	pub, priv, err := GenerateServerKey()
	if err != nil {
		t.Fatalf("GenerateServerKey: %v", err)
	}
	if !IsValidServerKeyPublic(pub) {
		t.Error("expected server public record to validate")
	}
	if !IsValidServerKeyPrivate(priv) {
		t.Error("expected server private record to validate")
	}

	data := "server attestation"
	env, ok := SignDataServerKey(priv, data, pub)
	if !ok {
		t.Fatal("SignDataServerKey failed")
	}
	if !VerifyDataServerKey(pub, env, data) {
		t.Error("expected server signature to verify")
	}
	if VerifyDataServerKey(pub, env, data+"x") {
		t.Error("expected signature over altered data to fail")
	}
}
