package primitives

import "errors"

var (
	// ErrInvalidKeySize is returned when a symmetric key is not AESKeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when an IV is not AESNonceSize bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrDecryptionFailed is returned when AEAD authentication fails.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidPublicKeySize is returned when KEM or DSA public key bytes
	// are the wrong length for the parameter set.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidPrivateKeySize is returned when KEM or DSA private key bytes
	// are the wrong length for the parameter set.
	ErrInvalidPrivateKeySize = errors.New("invalid private key size")

	// ErrInvalidCiphertextSize is returned when a KEM ciphertext is not the
	// expected fixed length for the parameter set.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrSignatureVerificationFailed names a DSA signature that does not
	// verify. DSA65Verify and DSA87Verify report that case as (false, nil)
	// and do not return this error.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")

	// ErrKeyParse is returned when raw key bytes cannot be unpacked into the
	// underlying cryptographic provider's key type.
	ErrKeyParse = errors.New("failed to parse key material")
)
