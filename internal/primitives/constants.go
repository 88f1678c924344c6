package primitives

// Byte lengths of the decoded key material for every algorithm this toolkit
// wraps. These are the sole structural test the library performs to accept
// opaque public-key material (spec §3).
const (
	// MLKEMPublicKeySize is the size of an ML-KEM-768 public key in bytes.
	MLKEMPublicKeySize = 1184
	// MLKEMPrivateKeySize is the size of an ML-KEM-768 private key in bytes.
	MLKEMPrivateKeySize = 2400
	// MLKEMCiphertextSize is the size of an ML-KEM-768 ciphertext in bytes.
	MLKEMCiphertextSize = 1088
	// MLKEMSharedSecretSize is the size of the ML-KEM-768 shared secret in bytes.
	MLKEMSharedSecretSize = 32

	// MLDSA65PublicKeySize is the size of an ML-DSA-65 public key in bytes.
	MLDSA65PublicKeySize = 1952
	// MLDSA65PrivateKeySize is the size of an ML-DSA-65 private key in bytes.
	MLDSA65PrivateKeySize = 4032

	// MLDSA87PublicKeySize is the size of an ML-DSA-87 public key in bytes.
	MLDSA87PublicKeySize = 2592
	// MLDSA87PrivateKeySize is the size of an ML-DSA-87 private key in bytes.
	MLDSA87PrivateKeySize = 4896

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce (IV) in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// HashSize is the size of a SHA-256 digest in bytes, the fixed length a
	// decoded keyHash field must have.
	HashSize = 32
)

// Algorithm identifier strings as they appear on the wire in the
// "algorithm" field of key records and envelopes.
const (
	AlgorithmMLKEM768 = "ML-KEM-768"
	AlgorithmMLDSA65  = "ML-DSA-65"
	AlgorithmMLDSA87  = "ML-DSA-87"
	AlgorithmAESGCM   = "AES-GCM"
)
