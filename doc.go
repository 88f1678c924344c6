// Package encryptink is a post-quantum end-to-end encryption toolkit for a
// messaging application. It defines a hierarchy of key roles (master,
// identity, account, room, device, server, share, share-signing, migrate,
// migrate-signing), a serialized envelope format for ciphertexts and
// signatures, and a message layer that chains room-key encryption with
// identity-key signing.
//
// # Algorithm Suite
//
//   - ML-KEM-768 for key encapsulation (account, share, migrate keys)
//   - ML-DSA-65 for signatures at security level 3 (identity, server,
//     share-signing, migrate-signing keys)
//   - ML-DSA-87 for signatures at security level 5 (the master key, the
//     root of the signing hierarchy)
//   - AES-256-GCM for authenticated encryption, both standalone (room,
//     device keys) and as the second stage of the hybrid KEM pipeline
//
// # Security Model
//
// The KEM-derived shared secret is used directly as the AES-256-GCM key
// with no intervening key-derivation step. This is deliberate: the wire
// format this toolkit reproduces is fixed by deployed clients and must
// not be altered by inserting an HKDF stage, even though that would be
// the more conventional choice. See the keys package for the per-role
// encrypt/decrypt pipelines.
//
// Key-pair validation (see the keys package's IsValidSignPair and
// IsValidEncryptPair) is a functional self-test, not just a length
// check: a candidate signing pair is validated by signing and verifying
// a fixed probe string, and a candidate encryption pair by encapsulating
// and decapsulating and comparing the resulting shared secrets.
//
// # Key Management
//
// Every key record is immutable text once generated. The caller owns
// persistence, transport, and trust decisions; this package performs no
// I/O and holds no state between calls.
//
// # Base64 Encoding
//
// All binary fields — keys, signatures, hashes, IVs, ciphertexts — use
// the standard base64 alphabet with padding (encoding/base64's
// StdEncoding), not the URL-safe variant.
package encryptink
