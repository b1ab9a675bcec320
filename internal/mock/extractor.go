package mock

import (
	"context"
	"errors"
	"os"

	"github.com/drussmiller/sparta-media-go/internal/port"
)

// FrameExtractor implements port.FrameExtractor for tests. It fails the
// first FailUntil attempts and then writes Output to the requested path, so
// the offset retry sequence can be exercised without a real subprocess.
type FrameExtractor struct {
	FailUntil int
	Output    []byte
	Err       error
	// FailOutput, when set, is written to the requested path on each failing
	// attempt, the way ffmpeg leaves a partial frame behind.
	FailOutput []byte

	Attempts int
	Offsets  []float64
}

var _ port.FrameExtractor = (*FrameExtractor)(nil)

func (m *FrameExtractor) Extract(ctx context.Context, sourcePath, outputPath string, offsetSeconds float64) error {
	m.Attempts++
	m.Offsets = append(m.Offsets, offsetSeconds)
	if m.Attempts <= m.FailUntil {
		if m.FailOutput != nil {
			if err := os.WriteFile(outputPath, m.FailOutput, 0o644); err != nil {
				return err
			}
		}
		if m.Err != nil {
			return m.Err
		}
		return errors.New("extraction failed")
	}
	return os.WriteFile(outputPath, m.Output, 0o644)
}
