package primitives

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateRandomString_LengthAndAlphabet(t *testing.T) {
	s, err := GenerateRandomString(16)
	if err != nil {
		t.Fatalf("GenerateRandomString: %v", err)
	}
	if len(s) != 16 {
		t.Fatalf("length = %d, want 16", len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(randomStringAlphabet, r) {
			t.Fatalf("unexpected character %q outside [A-Za-z0-9]", r)
		}
	}
}

func TestSetRandReaderForTesting_RestoresOriginal(t *testing.T) {
	fixed := bytes.Repeat([]byte{0x42}, 64)
	restore := SetRandReaderForTesting(bytes.NewReader(fixed))

	b, err := RandomBytes(4)
	if err != nil {
		t.Fatalf("RandomBytes: %v", err)
	}
	if !bytes.Equal(b, []byte{0x42, 0x42, 0x42, 0x42}) {
		t.Fatalf("expected deterministic bytes from fixed reader, got %x", b)
	}

	restore()
	if randReader == nil {
		t.Fatal("expected randReader to be restored, got nil")
	}
}
