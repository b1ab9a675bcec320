package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

const (
	DefaultPosterWidth  = 320
	DefaultPosterHeight = 180

	posterQuality = 80
)

// EncodePoster decodes an extracted frame and re-encodes it as a lossy WebP
// fitted into the poster bounding box, without upscaling.
func EncodePoster(r io.Reader, boxW, boxH int) ([]byte, error) {
	if boxW <= 0 || boxH <= 0 {
		boxW, boxH = DefaultPosterWidth, DefaultPosterHeight
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("thumbnail: failed to decode frame: %w", err)
	}

	fitted := imaging.Fit(img, boxW, boxH, imaging.Lanczos)

	buf := &bytes.Buffer{}
	if err := webp.Encode(buf, fitted, &webp.Options{Quality: posterQuality}); err != nil {
		return nil, fmt.Errorf("thumbnail: failed to encode WebP poster: %w", err)
	}
	return buf.Bytes(), nil
}
