package primitives

import (
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// DSA65Generate generates a fresh ML-DSA-65 key pair.
func DSA65Generate() (publicKey, privateKey []byte, err error) {
	pub, priv, err := mldsa65.GenerateKey(randReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate ML-DSA-65 keypair: %w", err)
	}
	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal ML-DSA-65 public key: %w", err)
	}
	privBytes, err := priv.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal ML-DSA-65 private key: %w", err)
	}
	return pubBytes, privBytes, nil
}

// DSA65Sign signs message with the ML-DSA-65 private key privateKey,
// returning the raw signature bytes. No context string is used.
func DSA65Sign(privateKey, message []byte) ([]byte, error) {
	if len(privateKey) != MLDSA65PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPrivateKeySize, len(privateKey), MLDSA65PrivateKeySize)
	}
	sk := &mldsa65.PrivateKey{}
	if err := sk.UnmarshalBinary(privateKey); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
	}

	sig := make([]byte, mldsa65.SignatureSize)
	mldsa65.SignTo(sk, message, nil, false, sig)
	return sig, nil
}

// DSA65Verify reports whether signature is a valid ML-DSA-65 signature over
// message under publicKey.
func DSA65Verify(publicKey, message, signature []byte) (bool, error) {
	if len(publicKey) != MLDSA65PublicKeySize {
		return false, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(publicKey), MLDSA65PublicKeySize)
	}
	pk := &mldsa65.PublicKey{}
	if err := pk.UnmarshalBinary(publicKey); err != nil {
		return false, fmt.Errorf("%w: %v", ErrKeyParse, err)
	}
	return mldsa65.Verify(pk, message, nil, signature), nil
}

// DSA87Generate generates a fresh ML-DSA-87 key pair, the parameter set
// used for the root master key role.
func DSA87Generate() (publicKey, privateKey []byte, err error) {
	pub, priv, err := mldsa87.GenerateKey(randReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate ML-DSA-87 keypair: %w", err)
	}
	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal ML-DSA-87 public key: %w", err)
	}
	privBytes, err := priv.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal ML-DSA-87 private key: %w", err)
	}
	return pubBytes, privBytes, nil
}

// DSA87Sign signs message with the ML-DSA-87 private key privateKey.
func DSA87Sign(privateKey, message []byte) ([]byte, error) {
	if len(privateKey) != MLDSA87PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPrivateKeySize, len(privateKey), MLDSA87PrivateKeySize)
	}
	sk := &mldsa87.PrivateKey{}
	if err := sk.UnmarshalBinary(privateKey); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
	}

	sig := make([]byte, mldsa87.SignatureSize)
	mldsa87.SignTo(sk, message, nil, false, sig)
	return sig, nil
}

// DSA87Verify reports whether signature is a valid ML-DSA-87 signature over
// message under publicKey.
func DSA87Verify(publicKey, message, signature []byte) (bool, error) {
	if len(publicKey) != MLDSA87PublicKeySize {
		return false, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(publicKey), MLDSA87PublicKeySize)
	}
	pk := &mldsa87.PublicKey{}
	if err := pk.UnmarshalBinary(publicKey); err != nil {
		return false, fmt.Errorf("%w: %v", ErrKeyParse, err)
	}
	return mldsa87.Verify(pk, message, nil, signature), nil
}
