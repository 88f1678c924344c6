package primitives

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// AEADEncrypt encrypts plaintext with AES-256-GCM under key using iv as the
// nonce. No additional authenticated data is used. The returned ciphertext
// has the 16-byte authentication tag appended.
func AEADEncrypt(key, iv, plaintext []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}
	if len(iv) != AESNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(iv), AESNonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return gcm.Seal(nil, iv, plaintext, nil), nil
}

// AEADDecrypt decrypts ciphertext (produced by AEADEncrypt) with AES-256-GCM
// under key using iv as the nonce. Returns ErrDecryptionFailed if
// authentication fails.
func AEADDecrypt(key, iv, ciphertext []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}
	if len(iv) != AESNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(iv), AESNonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// HybridEncryptResult is the output of the hybrid KEM+AEAD pipeline.
type HybridEncryptResult struct {
	EncryptedData []byte
	CipherText    []byte
	IV            []byte
}

// HybridEncrypt runs the hybrid asymmetric-encryption pipeline: encapsulate
// against publicKey to obtain a KEM ciphertext and shared secret, draw a
// fresh IV, then run AES-256-GCM keyed directly by the shared secret. No
// key-derivation step is applied between the KEM output and the AEAD key;
// this reproduces the fixed wire contract and must not be "improved" with
// an HKDF stage.
func HybridEncrypt(publicKey, plaintext []byte) (*HybridEncryptResult, error) {
	kemCiphertext, shared, err := KEMEncapsulate(publicKey)
	if err != nil {
		return nil, err
	}

	iv, err := GenerateIV()
	if err != nil {
		return nil, err
	}

	encryptedData, err := AEADEncrypt(shared, iv, plaintext)
	if err != nil {
		return nil, err
	}

	return &HybridEncryptResult{
		EncryptedData: encryptedData,
		CipherText:    kemCiphertext,
		IV:            iv,
	}, nil
}

// HybridDecrypt reverses HybridEncrypt: decapsulate kemCiphertext with
// privateKey to recover the shared secret, then run AES-256-GCM decryption
// directly under that secret.
func HybridDecrypt(privateKey, encryptedData, kemCiphertext, iv []byte) ([]byte, error) {
	shared, err := KEMDecapsulate(privateKey, kemCiphertext)
	if err != nil {
		return nil, err
	}
	return AEADDecrypt(shared, iv, encryptedData)
}
