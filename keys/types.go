// Package keys implements the ten key-role managers (spec §4.3): typed
// record shapes, generators, discriminator validators, and the
// encrypt/decrypt or sign/verify operations each role exposes.
package keys

// MasterKeyPublic is the root signer's public record. The master role
// never itself carries a parent signature; it is the trust anchor.
type MasterKeyPublic struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Algorithm string `json:"algorithm"`
}

// MasterKeyPrivate is the root signer's private record.
type MasterKeyPrivate struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Algorithm string `json:"algorithm"`
}

// IdentityKeyPublic is a per-session signing public record, signed by a
// master key at generation time.
type IdentityKeyPublic struct {
	KeyType     string `json:"keyType"`
	Key         string `json:"key"`
	Algorithm   string `json:"algorithm"`
	Timestamp   uint64 `json:"timestamp"`
	SessionUUID string `json:"sessionUuid"`
}

// IdentityKeyPrivate is the private counterpart of IdentityKeyPublic.
type IdentityKeyPrivate struct {
	KeyType     string `json:"keyType"`
	Key         string `json:"key"`
	Algorithm   string `json:"algorithm"`
	Timestamp   uint64 `json:"timestamp"`
	SessionUUID string `json:"sessionUuid"`
}

// AccountKeyPublic is a KEM public record used to re-wrap room keys to a
// specific recipient, signed by a master key at generation time.
type AccountKeyPublic struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Algorithm string `json:"algorithm"`
	Timestamp uint64 `json:"timestamp"`
}

// AccountKeyPrivate is the private counterpart of AccountKeyPublic.
type AccountKeyPrivate struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Algorithm string `json:"algorithm"`
	Timestamp uint64 `json:"timestamp"`
}

// ServerKeyPublic is the signing public record of a server collaborator.
// Servers are self-issued and pinned out of band by the host application;
// no master signature is produced for this role.
type ServerKeyPublic struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Algorithm string `json:"algorithm"`
	Timestamp uint64 `json:"timestamp"`
}

// ServerKeyPrivate is the private counterpart of ServerKeyPublic.
type ServerKeyPrivate struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Algorithm string `json:"algorithm"`
	Timestamp uint64 `json:"timestamp"`
}

// RoomKey is a symmetric AEAD key scoped to one room session.
type RoomKey struct {
	KeyType     string `json:"keyType"`
	Key         string `json:"key"`
	Algorithm   string `json:"algorithm"`
	Timestamp   uint64 `json:"timestamp"`
	SessionUUID string `json:"sessionUuid"`
}

// DeviceKey is a symmetric AEAD key scoped to one device, with no
// algorithm, timestamp, or session-uuid fields.
type DeviceKey struct {
	KeyType string `json:"keyType"`
	Key     string `json:"key"`
}

// ShareKeyPublic is a KEM public record used for one-off sharing flows,
// signed by a master key at generation time.
type ShareKeyPublic struct {
	KeyType     string `json:"keyType"`
	Key         string `json:"key"`
	Algorithm   string `json:"algorithm"`
	Timestamp   uint64 `json:"timestamp"`
	SessionUUID string `json:"sessionUuid"`
}

// ShareKeyPrivate is the private counterpart of ShareKeyPublic.
type ShareKeyPrivate struct {
	KeyType     string `json:"keyType"`
	Key         string `json:"key"`
	Algorithm   string `json:"algorithm"`
	Timestamp   uint64 `json:"timestamp"`
	SessionUUID string `json:"sessionUuid"`
}

// ShareSignKeyPublic is a DSA public record used to sign share-flow
// metadata, signed by a master key at generation time.
type ShareSignKeyPublic struct {
	KeyType     string `json:"keyType"`
	Key         string `json:"key"`
	Algorithm   string `json:"algorithm"`
	Timestamp   uint64 `json:"timestamp"`
	SessionUUID string `json:"sessionUuid"`
}

// ShareSignKeyPrivate is the private counterpart of ShareSignKeyPublic.
type ShareSignKeyPrivate struct {
	KeyType     string `json:"keyType"`
	Key         string `json:"key"`
	Algorithm   string `json:"algorithm"`
	Timestamp   uint64 `json:"timestamp"`
	SessionUUID string `json:"sessionUuid"`
}

// MigrateKeyPublic is a KEM public record used for account-migration
// flows. Unlike account and share keys, migrate keys carry no master
// signature: migration is bootstrapped out of band.
type MigrateKeyPublic struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Timestamp uint64 `json:"timestamp"`
}

// MigrateKeyPrivate is the private counterpart of MigrateKeyPublic.
type MigrateKeyPrivate struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Timestamp uint64 `json:"timestamp"`
}

// MigrateSignKeyPublic is a DSA public record used to sign
// account-migration metadata.
type MigrateSignKeyPublic struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Timestamp uint64 `json:"timestamp"`
}

// MigrateSignKeyPrivate is the private counterpart of MigrateSignKeyPublic.
type MigrateSignKeyPrivate struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Timestamp uint64 `json:"timestamp"`
}
