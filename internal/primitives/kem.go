package primitives

import (
	"fmt"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
)

// KEMGenerate generates a fresh ML-KEM-768 key pair and returns the raw
// public and private key bytes.
func KEMGenerate() (publicKey, privateKey []byte, err error) {
	pub, priv, err := mlkem768.GenerateKeyPair(randReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate ML-KEM-768 keypair: %w", err)
	}

	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal ML-KEM-768 public key: %w", err)
	}
	privBytes, err := priv.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal ML-KEM-768 private key: %w", err)
	}

	return pubBytes, privBytes, nil
}

// KEMEncapsulate encapsulates against publicKey, returning the KEM
// ciphertext and the 32-byte shared secret.
func KEMEncapsulate(publicKey []byte) (ciphertext, sharedSecret []byte, err error) {
	if len(publicKey) != MLKEMPublicKeySize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(publicKey), MLKEMPublicKeySize)
	}

	pub := &mlkem768.PublicKey{}
	if err := pub.Unpack(publicKey); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
	}

	ct := make([]byte, mlkem768.CiphertextSize)
	ss := make([]byte, mlkem768.SharedKeySize)
	seed := make([]byte, mlkem768.EncapsulationSeedSize)
	if _, err := randReader.Read(seed); err != nil {
		return nil, nil, fmt.Errorf("failed to read encapsulation seed: %w", err)
	}
	pub.EncapsulateTo(ct, ss, seed)

	return ct, ss, nil
}

// KEMDecapsulate decapsulates ciphertext with privateKey, returning the
// 32-byte shared secret.
func KEMDecapsulate(privateKey, ciphertext []byte) ([]byte, error) {
	if len(privateKey) != MLKEMPrivateKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPrivateKeySize, len(privateKey), MLKEMPrivateKeySize)
	}
	if len(ciphertext) != MLKEMCiphertextSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidCiphertextSize, len(ciphertext), MLKEMCiphertextSize)
	}

	priv := &mlkem768.PrivateKey{}
	if err := priv.Unpack(privateKey); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
	}

	ss := make([]byte, mlkem768.SharedKeySize)
	priv.DecapsulateTo(ss, ciphertext)
	return ss, nil
}
