package primitives

import (
	"bytes"
	"testing"
)

func TestKEMEncapsulateDecapsulate(t *testing.T) {
	pub, priv, err := KEMGenerate()
	if err != nil {
		t.Fatalf("KEMGenerate: %v", err)
	}
	if len(pub) != MLKEMPublicKeySize {
		t.Fatalf("public key size = %d, want %d", len(pub), MLKEMPublicKeySize)
	}
	if len(priv) != MLKEMPrivateKeySize {
		t.Fatalf("private key size = %d, want %d", len(priv), MLKEMPrivateKeySize)
	}

	ciphertext, shared, err := KEMEncapsulate(pub)
	if err != nil {
		t.Fatalf("KEMEncapsulate: %v", err)
	}
	if len(ciphertext) != MLKEMCiphertextSize {
		t.Fatalf("ciphertext size = %d, want %d", len(ciphertext), MLKEMCiphertextSize)
	}
	if len(shared) != MLKEMSharedSecretSize {
		t.Fatalf("shared secret size = %d, want %d", len(shared), MLKEMSharedSecretSize)
	}

	recovered, err := KEMDecapsulate(priv, ciphertext)
	if err != nil {
		t.Fatalf("KEMDecapsulate: %v", err)
	}
	if !bytes.Equal(shared, recovered) {
		t.Fatal("decapsulated shared secret does not match encapsulated one")
	}
}

func TestKEMEncapsulate_RejectsWrongSizedPublicKey(t *testing.T) {
	if _, _, err := KEMEncapsulate([]byte("too short")); err == nil {
		t.Fatal("expected error for undersized public key")
	}
}
