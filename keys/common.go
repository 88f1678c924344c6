package keys

import (
	"encoding/base64"
	"time"
)

func decodeBase64(s string) ([]byte, bool) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return b, true
}

func encodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func decodedLenIs(s string, want int) bool {
	b, ok := decodeBase64(s)
	return ok && len(b) == want
}

// nowMillis returns the current wall-clock time as milliseconds since the
// Unix epoch.
func nowMillis() uint64 {
	return uint64(time.Now().UnixMilli())
}
