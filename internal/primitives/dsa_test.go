package primitives

import "testing"

func TestDSA65SignVerify(t *testing.T) {
	pub, priv, err := DSA65Generate()
	if err != nil {
		t.Fatalf("DSA65Generate: %v", err)
	}
	if len(pub) != MLDSA65PublicKeySize {
		t.Fatalf("public key size = %d, want %d", len(pub), MLDSA65PublicKeySize)
	}
	if len(priv) != MLDSA65PrivateKeySize {
		t.Fatalf("private key size = %d, want %d", len(priv), MLDSA65PrivateKeySize)
	}

	msg := []byte("identity binds a session")
	sig, err := DSA65Sign(priv, msg)
	if err != nil {
		t.Fatalf("DSA65Sign: %v", err)
	}

	ok, err := DSA65Verify(pub, msg, sig)
	if err != nil {
		t.Fatalf("DSA65Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected signature to verify")
	}

	tampered := append([]byte{}, msg...)
	tampered[0] ^= 0xFF
	ok, err = DSA65Verify(pub, tampered, sig)
	if err != nil {
		t.Fatalf("DSA65Verify: %v", err)
	}
	if ok {
		t.Fatal("expected signature over tampered message to fail verification")
	}
}

func TestDSA87SignVerify(t *testing.T) {
	pub, priv, err := DSA87Generate()
	if err != nil {
		t.Fatalf("DSA87Generate: %v", err)
	}
	if len(pub) != MLDSA87PublicKeySize {
		t.Fatalf("public key size = %d, want %d", len(pub), MLDSA87PublicKeySize)
	}
	if len(priv) != MLDSA87PrivateKeySize {
		t.Fatalf("private key size = %d, want %d", len(priv), MLDSA87PrivateKeySize)
	}

	msg := []byte("master signs the root")
	sig, err := DSA87Sign(priv, msg)
	if err != nil {
		t.Fatalf("DSA87Sign: %v", err)
	}

	ok, err := DSA87Verify(pub, msg, sig)
	if err != nil {
		t.Fatalf("DSA87Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected signature to verify")
	}
}
