package repair

import (
	"bytes"
)

// sniffLen is how many leading bytes are fetched to identify content.
const sniffLen = 512

// sniffImageExt identifies an image format from the leading bytes of an
// object and returns the matching extension. ok is false when the content
// does not look like a known image format.
func sniffImageExt(head []byte) (ext string, ok bool) {
	switch {
	case bytes.HasPrefix(head, []byte{0xFF, 0xD8, 0xFF}):
		return ".jpg", true
	case bytes.HasPrefix(head, []byte("\x89PNG\r\n\x1a\n")):
		return ".png", true
	case bytes.HasPrefix(head, []byte("GIF87a")) || bytes.HasPrefix(head, []byte("GIF89a")):
		return ".gif", true
	case len(head) >= 12 && bytes.HasPrefix(head, []byte("RIFF")) && bytes.Equal(head[8:12], []byte("WEBP")):
		return ".webp", true
	}

	// The historical fallback generator wrote SVG bytes under video
	// extensions, sometimes with an XML prolog, sometimes without.
	trimmed := bytes.TrimLeft(head, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("<svg")) || bytes.HasPrefix(trimmed, []byte("<?xml")) {
		return ".svg", true
	}

	return "", false
}
