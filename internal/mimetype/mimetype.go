// Package mimetype maps storage key extensions to MIME types. Pure lookup,
// shared by the serving route, the pipeline and the repair scanner.
package mimetype

import (
	"path"
	"strings"
)

const DefaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
}

var videoExts = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".webm": true,
	".avi":  true,
	".mpg":  true,
	".mpeg": true,
	".mkv":  true,
	".flv":  true,
	".3gp":  true,
}

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// ForKey returns the MIME type for a storage key based on its extension.
// Unknown extensions map to a generic binary content type.
func ForKey(key string) string {
	if ct, ok := contentTypes[normalise(path.Ext(key))]; ok {
		return ct
	}
	return DefaultContentType
}

// IsVideoExt reports whether ext names a video container.
func IsVideoExt(ext string) bool {
	return videoExts[normalise(ext)]
}

// IsImageExt reports whether ext names a still image format.
func IsImageExt(ext string) bool {
	return imageExts[normalise(ext)]
}

func normalise(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
