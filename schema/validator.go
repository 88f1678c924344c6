// Package schema provides structural-only validation of externally
// supplied records (spec §4.4): required fields, types, decoded lengths
// for fixed-width fields, and discriminator closures. It never touches
// key material beyond length checks and performs no cryptography.
package schema

import (
	"encoding/base64"
	"encoding/json"
	"regexp"
)

var uuidV7Pattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func parseRecord(s string) (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, false
	}
	return m, true
}

func stringField(m map[string]any, field string) (string, bool) {
	v, ok := m[field]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func decodedLen(s string) (int, bool) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return 0, false
	}
	return len(b), true
}

// keySpec describes the structural shape expected of one key record type.
type keySpec struct {
	keyType        string
	algorithm      string // empty means no algorithm field expected
	keyLen         int
	requireUUID    bool
	requireTime    bool
}

func validateKeyRecord(record string, spec keySpec) bool {
	m, ok := parseRecord(record)
	if !ok {
		return false
	}

	keyType, ok := stringField(m, "keyType")
	if !ok || keyType != spec.keyType {
		return false
	}

	key, ok := stringField(m, "key")
	if !ok {
		return false
	}
	n, ok := decodedLen(key)
	if !ok || n != spec.keyLen {
		return false
	}

	if spec.algorithm != "" {
		alg, ok := stringField(m, "algorithm")
		if !ok || alg != spec.algorithm {
			return false
		}
	}

	if spec.requireTime {
		if _, ok := m["timestamp"]; !ok {
			return false
		}
	}

	if spec.requireUUID {
		uuid, ok := stringField(m, "sessionUuid")
		if !ok || !uuidV7Pattern.MatchString(uuid) {
			return false
		}
	}

	return true
}

// Key-length constants mirrored from internal/primitives to keep this
// package free of a dependency on the cryptography provider.
const (
	mldsa87PublicLen  = 2592
	mldsa87PrivateLen = 4896
	mldsa65PublicLen  = 1952
	mldsa65PrivateLen = 4032
	mlkem768PublicLen = 1184
	mlkem768PrivateLen = 2400
	aesKeyLen         = 32
)

func ValidateMasterKeyPublic(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "masterKeyPublic", algorithm: "ML-DSA-87", keyLen: mldsa87PublicLen})
}

func ValidateMasterKeyPrivate(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "masterKeyPrivate", algorithm: "ML-DSA-87", keyLen: mldsa87PrivateLen})
}

func ValidateIdentityKeyPublic(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "identityKeyPublic", algorithm: "ML-DSA-65", keyLen: mldsa65PublicLen, requireUUID: true, requireTime: true})
}

func ValidateIdentityKeyPrivate(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "identityKeyPrivate", algorithm: "ML-DSA-65", keyLen: mldsa65PrivateLen, requireUUID: true, requireTime: true})
}

func ValidateAccountKeyPublic(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "accountKeyPublic", algorithm: "ML-KEM-768", keyLen: mlkem768PublicLen, requireTime: true})
}

func ValidateAccountKeyPrivate(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "accountKeyPrivate", algorithm: "ML-KEM-768", keyLen: mlkem768PrivateLen, requireTime: true})
}

func ValidateServerKeyPublic(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "serverKeyPublic", algorithm: "ML-DSA-65", keyLen: mldsa65PublicLen, requireTime: true})
}

func ValidateServerKeyPrivate(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "serverKeyPrivate", algorithm: "ML-DSA-65", keyLen: mldsa65PrivateLen, requireTime: true})
}

func ValidateRoomKey(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "roomKey", algorithm: "AES-GCM", keyLen: aesKeyLen, requireUUID: true, requireTime: true})
}

func ValidateDeviceKey(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "deviceKey", keyLen: aesKeyLen})
}

func ValidateShareKeyPublic(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "shareKeyPublic", algorithm: "ML-KEM-768", keyLen: mlkem768PublicLen, requireUUID: true, requireTime: true})
}

func ValidateShareKeyPrivate(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "shareKeyPrivate", algorithm: "ML-KEM-768", keyLen: mlkem768PrivateLen, requireUUID: true, requireTime: true})
}

func ValidateShareSignKeyPublic(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "shareSignKeyPublic", algorithm: "ML-DSA-65", keyLen: mldsa65PublicLen, requireUUID: true, requireTime: true})
}

func ValidateShareSignKeyPrivate(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "shareSignKeyPrivate", algorithm: "ML-DSA-65", keyLen: mldsa65PrivateLen, requireUUID: true, requireTime: true})
}

func ValidateMigrateKeyPublic(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "migrateKeyPublic", keyLen: mlkem768PublicLen, requireTime: true})
}

func ValidateMigrateKeyPrivate(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "migrateKeyPrivate", keyLen: mlkem768PrivateLen, requireTime: true})
}

func ValidateMigrateSignKeyPublic(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "migrateSignKeyPublic", keyLen: mldsa65PublicLen, requireTime: true})
}

func ValidateMigrateSignKeyPrivate(record string) bool {
	return validateKeyRecord(record, keySpec{keyType: "migrateSignKeyPrivate", keyLen: mldsa65PrivateLen, requireTime: true})
}

// ValidateSignedEnvelope checks the structural shape of a signed envelope
// against the expected domain keyType and algorithm (spec §3 iii).
func ValidateSignedEnvelope(record, expectedKeyType, expectedAlgorithm string) bool {
	m, ok := parseRecord(record)
	if !ok {
		return false
	}
	keyType, ok := stringField(m, "keyType")
	if !ok || keyType != expectedKeyType {
		return false
	}
	algorithm, ok := stringField(m, "algorithm")
	if !ok || algorithm != expectedAlgorithm {
		return false
	}
	keyHash, ok := stringField(m, "keyHash")
	if !ok {
		return false
	}
	if n, ok := decodedLen(keyHash); !ok || n != 32 {
		return false
	}
	signature, ok := stringField(m, "signature")
	if !ok {
		return false
	}
	if _, err := base64.StdEncoding.DecodeString(signature); err != nil {
		return false
	}
	return true
}

// ValidateEncryptedEnvelope checks the structural shape of an encrypted
// envelope against the expected role keyType, requiring (or forbidding) a
// cipherText field according to whether the role is KEM-based (spec §3 ii).
func ValidateEncryptedEnvelope(record, expectedKeyType string, requireCipherText bool) bool {
	m, ok := parseRecord(record)
	if !ok {
		return false
	}
	keyType, ok := stringField(m, "keyType")
	if !ok || keyType != expectedKeyType {
		return false
	}
	keyHash, ok := stringField(m, "keyHash")
	if !ok {
		return false
	}
	if n, ok := decodedLen(keyHash); !ok || n != 32 {
		return false
	}
	iv, ok := stringField(m, "iv")
	if !ok {
		return false
	}
	if n, ok := decodedLen(iv); !ok || n != 12 {
		return false
	}
	encryptedData, ok := stringField(m, "encryptedData")
	if !ok {
		return false
	}
	if _, err := base64.StdEncoding.DecodeString(encryptedData); err != nil {
		return false
	}

	cipherText, present := m["cipherText"]
	if requireCipherText {
		if !present {
			return false
		}
		ctStr, ok := cipherText.(string)
		if !ok {
			return false
		}
		if _, err := base64.StdEncoding.DecodeString(ctStr); err != nil {
			return false
		}
	} else if present {
		return false
	}

	return true
}

// plaintextValueTypes is the closed discriminator set accepted for a
// cleartext message's value.type field. "thumbnail" is included even
// though no content factory in the message package produces it: this
// mirrors the original implementation's permissive validator and is
// preserved deliberately (spec §9 iii).
var plaintextValueTypes = map[string]bool{
	"text":      true,
	"image":     true,
	"video":     true,
	"audio":     true,
	"file":      true,
	"thumbnail": true,
}

// ValidateMessage checks the structural shape of a message record (spec
// §3): the shared header fields, then branches on encrypted to check
// value's shape.
func ValidateMessage(record string) bool {
	m, ok := parseRecord(record)
	if !ok {
		return false
	}

	if _, ok := stringField(m, "channel"); !ok {
		return false
	}
	if _, ok := m["timestamp"]; !ok {
		return false
	}
	if _, ok := m["isLarge"].(bool); !ok {
		return false
	}
	if _, ok := stringField(m, "roomid"); !ok {
		return false
	}

	encrypted, ok := m["encrypted"].(bool)
	if !ok {
		return false
	}

	value, present := m["value"]
	if !present {
		return false
	}

	if !encrypted {
		valueObj, ok := value.(map[string]any)
		if !ok {
			return false
		}
		valueType, ok := valueObj["type"].(string)
		if !ok || !plaintextValueTypes[valueType] {
			return false
		}
		return true
	}

	if _, ok := value.(string); !ok {
		return false
	}
	return true
}
