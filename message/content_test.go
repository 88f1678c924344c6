package message

import (
	"encoding/json"
	"testing"
)

func TestCreateTextContent(t *testing.T) {
	out, ok := CreateTextContent("hi there")
	if !ok {
		t.Fatal("CreateTextContent failed")
	}

	var tc TextContent
	if err := json.Unmarshal([]byte(out), &tc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tc.Text != "hi there" {
		t.Fatalf("expected text=%q, got %q", "hi there", tc.Text)
	}
}

func TestCreateMediaContentVariants(t *testing.T) {
	meta := MediaMetadata{Filename: "photo.jpg", MimeType: "image/jpeg"}
	cases := []struct {
		name string
		fn   func(string, MediaMetadata) (string, bool)
	}{
		{"image", CreateImageContent},
		{"video", CreateVideoContent},
		{"audio", CreateAudioContent},
		{"file", CreateFileContent},
	}

	for _, c := range cases {
		out, ok := c.fn("https://example.test/media/1", meta)
		if !ok {
			t.Fatalf("%s: create failed", c.name)
		}
		var mc MediaContent
		if err := json.Unmarshal([]byte(out), &mc); err != nil {
			t.Fatalf("%s: unmarshal: %v", c.name, err)
		}
		if mc.URI != "https://example.test/media/1" {
			t.Fatalf("%s: expected uri to round-trip, got %q", c.name, mc.URI)
		}
		if mc.Metadata.Filename != meta.Filename {
			t.Fatalf("%s: expected metadata to round-trip", c.name)
		}
	}
}
