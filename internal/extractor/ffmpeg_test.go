package extractor

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewFFmpegExtractor_Defaults(t *testing.T) {
	e := NewFFmpegExtractor(Options{})
	if e.binPath != "ffmpeg" {
		t.Errorf("binPath = %q; want ffmpeg", e.binPath)
	}
	if e.targetWidth != DefaultTargetWidth {
		t.Errorf("targetWidth = %d; want %d", e.targetWidth, DefaultTargetWidth)
	}
	if e.minSizeBytes != DefaultMinSizeBytes {
		t.Errorf("minSizeBytes = %d; want %d", e.minSizeBytes, DefaultMinSizeBytes)
	}
	if e.attemptTimeout != DefaultAttemptTimeout {
		t.Errorf("attemptTimeout = %s; want %s", e.attemptTimeout, DefaultAttemptTimeout)
	}
}

func TestVerifyOutput_RejectsBelowThreshold(t *testing.T) {
	e := NewFFmpegExtractor(Options{MinSizeBytes: 1024})
	out := filepath.Join(t.TempDir(), "frame.jpg")

	if err := os.WriteFile(out, bytes.Repeat([]byte{0x1}, 200), 0o644); err != nil {
		t.Fatal(err)
	}
	err := e.verifyOutput(out, 1.0)
	if !errors.Is(err, ErrFrameTooSmall) {
		t.Fatalf("got error %v; want ErrFrameTooSmall", err)
	}
}

func TestVerifyOutput_AcceptsAboveThreshold(t *testing.T) {
	e := NewFFmpegExtractor(Options{MinSizeBytes: 1024})
	out := filepath.Join(t.TempDir(), "frame.jpg")

	if err := os.WriteFile(out, bytes.Repeat([]byte{0x1}, 50_000), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := e.verifyOutput(out, 1.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerifyOutput_MissingOutput(t *testing.T) {
	e := NewFFmpegExtractor(Options{})
	err := e.verifyOutput(filepath.Join(t.TempDir(), "nope.jpg"), 0.5)
	if err == nil {
		t.Fatal("expected error for missing output")
	}
}

func TestVerifyOutput_CustomThreshold(t *testing.T) {
	e := NewFFmpegExtractor(Options{MinSizeBytes: 64, AttemptTimeout: time.Second})
	out := filepath.Join(t.TempDir(), "frame.jpg")

	if err := os.WriteFile(out, bytes.Repeat([]byte{0x1}, 100), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := e.verifyOutput(out, 1.0); err != nil {
		t.Fatalf("100 bytes should pass a 64-byte threshold: %v", err)
	}
}
