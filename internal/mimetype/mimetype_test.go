package mimetype

import "testing"

func TestForKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"thumbnails/a.jpg", "image/jpeg"},
		{"thumbnails/a.jpeg", "image/jpeg"},
		{"thumbnails/a.png", "image/png"},
		{"thumbnails/a.gif", "image/gif"},
		{"thumbnails/a-poster.webp", "image/webp"},
		{"thumbnails/a.svg", "image/svg+xml"},
		{"uploads/a.mp4", "video/mp4"},
		{"uploads/a.MOV", "video/quicktime"},
		{"uploads/a.webm", "video/webm"},
		{"uploads/a.avi", "video/x-msvideo"},
		{"uploads/a.xyz", DefaultContentType},
		{"noextension", DefaultContentType},
	}
	for _, tt := range tests {
		if got := ForKey(tt.key); got != tt.want {
			t.Errorf("ForKey(%q) = %q; want %q", tt.key, got, tt.want)
		}
	}
}

func TestIsVideoExt(t *testing.T) {
	for _, ext := range []string{".mp4", ".mov", "MOV", ".webm", ".mkv"} {
		if !IsVideoExt(ext) {
			t.Errorf("IsVideoExt(%q) = false; want true", ext)
		}
	}
	for _, ext := range []string{".jpg", ".svg", "", ".txt"} {
		if IsVideoExt(ext) {
			t.Errorf("IsVideoExt(%q) = true; want false", ext)
		}
	}
}

func TestIsImageExt(t *testing.T) {
	for _, ext := range []string{".jpg", "jpeg", ".png", ".webp", ".svg"} {
		if !IsImageExt(ext) {
			t.Errorf("IsImageExt(%q) = false; want true", ext)
		}
	}
	for _, ext := range []string{".mp4", "", ".pdf"} {
		if IsImageExt(ext) {
			t.Errorf("IsImageExt(%q) = true; want false", ext)
		}
	}
}
