package port

import "context"

// FrameExtractor pulls a single still frame out of a video file at the given
// time offset and writes it to outputPath. A failed attempt (subprocess
// error, missing output, output below the minimum size) is recoverable; the
// caller retries at the next candidate offset.
type FrameExtractor interface {
	Extract(ctx context.Context, sourcePath, outputPath string, offsetSeconds float64) error
}
