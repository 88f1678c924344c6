package keys

import "regexp"

var uuidV7Pattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// IsValidUUIDv7 reports whether s matches the canonical textual form of a
// version-7 UUID (spec §6).
func IsValidUUIDv7(s string) bool {
	return uuidV7Pattern.MatchString(s)
}
