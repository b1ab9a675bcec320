// Package extractor pulls single still frames out of video files by driving
// an ffmpeg subprocess.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/drussmiller/sparta-media-go/internal/port"
)

// ErrFrameTooSmall marks an output below the minimum byte-size threshold.
// Near-empty outputs are usually black or blank frames; they are rejected as
// failures so the caller retries at the next offset.
var ErrFrameTooSmall = errors.New("extractor: output below minimum size")

const (
	DefaultTargetWidth    = 480
	DefaultMinSizeBytes   = 1024
	DefaultAttemptTimeout = 30 * time.Second
)

type Options struct {
	BinPath        string // ffmpeg binary, defaults to "ffmpeg" on PATH
	TargetWidth    int
	MinSizeBytes   int64
	AttemptTimeout time.Duration
}

// FFmpegExtractor invokes ffmpeg to seek, decode exactly one frame, and
// scale it to the target width preserving aspect ratio.
type FFmpegExtractor struct {
	binPath        string
	targetWidth    int
	minSizeBytes   int64
	attemptTimeout time.Duration
}

// compile-time check: *FFmpegExtractor must satisfy port.FrameExtractor
var _ port.FrameExtractor = (*FFmpegExtractor)(nil)

func NewFFmpegExtractor(opts Options) *FFmpegExtractor {
	if opts.BinPath == "" {
		opts.BinPath = "ffmpeg"
	}
	if opts.TargetWidth <= 0 {
		opts.TargetWidth = DefaultTargetWidth
	}
	if opts.MinSizeBytes <= 0 {
		opts.MinSizeBytes = DefaultMinSizeBytes
	}
	if opts.AttemptTimeout <= 0 {
		opts.AttemptTimeout = DefaultAttemptTimeout
	}
	return &FFmpegExtractor{
		binPath:        opts.BinPath,
		targetWidth:    opts.TargetWidth,
		minSizeBytes:   opts.MinSizeBytes,
		attemptTimeout: opts.AttemptTimeout,
	}
}

// Extract seeks to offsetSeconds in sourcePath and writes one high-quality
// frame to outputPath. Subprocess error, missing output or an output below
// the minimum size all count as one failed attempt.
func (e *FFmpegExtractor) Extract(ctx context.Context, sourcePath, outputPath string, offsetSeconds float64) error {
	if _, err := exec.LookPath(e.binPath); err != nil {
		return fmt.Errorf("extractor: %q not found in PATH: %w", e.binPath, err)
	}

	cctx, cancel := context.WithTimeout(ctx, e.attemptTimeout)
	defer cancel()

	// -ss before -i seeks on the demuxer, which is much faster than
	// decoding up to the offset.
	args := []string{
		"-ss", strconv.FormatFloat(offsetSeconds, 'f', 2, 64),
		"-i", sourcePath,
		"-frames:v", "1",
		"-vf", fmt.Sprintf("scale=%d:-2", e.targetWidth),
		"-pix_fmt", "yuvj420p",
		"-q:v", "2",
		"-y",
		outputPath,
	}

	cmd := exec.CommandContext(cctx, e.binPath, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("extractor: ffmpeg failed at offset %.2fs: %w\noutput: %s", offsetSeconds, err, out)
	}

	return e.verifyOutput(outputPath, offsetSeconds)
}

func (e *FFmpegExtractor) verifyOutput(outputPath string, offsetSeconds float64) error {
	info, err := os.Stat(outputPath)
	if err != nil {
		return fmt.Errorf("extractor: no output produced at offset %.2fs: %w", offsetSeconds, err)
	}
	if info.Size() < e.minSizeBytes {
		return fmt.Errorf("%w: %d bytes at offset %.2fs (min %d)", ErrFrameTooSmall, info.Size(), offsetSeconds, e.minSizeBytes)
	}
	return nil
}
