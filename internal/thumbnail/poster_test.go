package thumbnail

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func encodeTestJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestEncodePoster_FitsWithinBox(t *testing.T) {
	src := encodeTestJPEG(t, 640, 360)

	out, err := EncodePoster(bytes.NewReader(src), 320, 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty poster")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("poster does not decode: %v", err)
	}
	if format != "webp" {
		t.Errorf("format = %q; want webp", format)
	}
	if cfg.Width > 320 || cfg.Height > 180 {
		t.Errorf("poster %dx%d exceeds bounding box", cfg.Width, cfg.Height)
	}
}

func TestEncodePoster_NeverUpscales(t *testing.T) {
	src := encodeTestJPEG(t, 64, 36)

	out, err := EncodePoster(bytes.NewReader(src), 320, 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("poster does not decode: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 36 {
		t.Errorf("poster %dx%d; small frames must keep their size", cfg.Width, cfg.Height)
	}
}

func TestEncodePoster_RejectsGarbage(t *testing.T) {
	if _, err := EncodePoster(bytes.NewReader([]byte("not an image")), 320, 180); err == nil {
		t.Fatal("expected decode error")
	}
}
