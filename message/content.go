// Package message implements the message layer (spec §4.5): room-key
// encryption chained with identity-key signing, a freshness-window and
// roomid-binding check on decrypt, and recipient fan-out of a room key
// via account-key re-wrapping.
package message

import "encoding/json"

// ReplyInfo references the message a new message is replying to. Carried
// over from the original implementation's reply/mention fields, which the
// distilled specification's content model omits but does not forbid.
type ReplyInfo struct {
	ID string `json:"id"`
}

// MediaMetadata describes a media attachment's filename and MIME type.
type MediaMetadata struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
}

// TextContent is the bare plaintext payload for a text message, handed to
// EncryptMessage as-is (it carries no {type, content} wrapper of its own —
// DecryptMessage reconstructs that wrapper from the decrypted bytes).
type TextContent struct {
	Text         string  `json:"text"`
	Format       *string `json:"format,omitempty"`
	IsThumbnail  *bool   `json:"isThumbnail,omitempty"`
	ThumbnailOf  *string `json:"thumbnailOf,omitempty"`
	OriginalSize *uint64 `json:"originalSize,omitempty"`
}

// MediaContent is the bare plaintext payload shared by image, video,
// audio, and file messages.
type MediaContent struct {
	URI          string        `json:"uri"`
	Metadata     MediaMetadata `json:"metadata"`
	IsThumbnail  *bool         `json:"isThumbnail,omitempty"`
	ThumbnailOf  *string       `json:"thumbnailOf,omitempty"`
	OriginalSize *uint64       `json:"originalSize,omitempty"`
}

// Value is the decrypted message's discriminated content wrapper: Type
// selects which shape Content (a serialized TextContent/MediaContent
// payload) holds. DecryptMessage builds this from the room-key-decrypted
// bytes; the content factories below produce the bare inner payload that
// goes in, not this wrapper.
type Value struct {
	Type    string     `json:"type"`
	Content string     `json:"content"`
	Reply   *ReplyInfo `json:"reply,omitempty"`
	Mention []string   `json:"mention,omitempty"`
}

func marshalContent(content any) (string, bool) {
	out, err := json.Marshal(content)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// CreateTextContent builds the serialized bare text content that
// EncryptMessage encrypts as plaintextValue.
func CreateTextContent(text string) (string, bool) {
	return marshalContent(TextContent{Text: text})
}

// CreateImageContent builds the serialized bare image content that
// EncryptMessage encrypts as plaintextValue.
func CreateImageContent(uri string, metadata MediaMetadata) (string, bool) {
	return marshalContent(MediaContent{URI: uri, Metadata: metadata})
}

// CreateVideoContent builds the serialized bare video content. Video
// content shares the image shape, matching the original implementation's
// type alias.
func CreateVideoContent(uri string, metadata MediaMetadata) (string, bool) {
	return marshalContent(MediaContent{URI: uri, Metadata: metadata})
}

// CreateAudioContent builds the serialized bare audio content, sharing the
// image/video content shape.
func CreateAudioContent(uri string, metadata MediaMetadata) (string, bool) {
	return marshalContent(MediaContent{URI: uri, Metadata: metadata})
}

// CreateFileContent builds the serialized bare file content, sharing the
// image/video/audio content shape.
func CreateFileContent(uri string, metadata MediaMetadata) (string, bool) {
	return marshalContent(MediaContent{URI: uri, Metadata: metadata})
}
