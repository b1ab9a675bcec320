// Package thumbnail produces derived preview images: a deterministic vector
// placeholder for when extraction is impossible, and the WebP poster encode
// of a successfully extracted frame.
package thumbnail

// Fallback dimensions match the extractor's target aspect so placeholders
// line up in grid layouts.
const (
	FallbackWidth  = 480
	FallbackHeight = 270
)

// FallbackExt is the extension fallback thumbnails are written under. An
// earlier generator reused the source video's extension here, which is the
// mislabeled-content defect the repair scanner corrects.
const FallbackExt = ".svg"

const FallbackContentType = "image/svg+xml"

const fallbackSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 480 270" width="480" height="270">
  <rect width="480" height="270" fill="#1f2430"/>
  <rect x="8" y="8" width="464" height="254" fill="none" stroke="#3a4152" stroke-width="2"/>
  <rect x="8" y="8" width="24" height="254" fill="#3a4152"/>
  <rect x="448" y="8" width="24" height="254" fill="#3a4152"/>
  <circle cx="240" cy="135" r="52" fill="#3a4152"/>
  <polygon points="222,105 222,165 276,135" fill="#aab2c5"/>
</svg>
`

// GenerateFallback returns the placeholder image bytes. Pure and
// deterministic: the same bytes on every call, no I/O, never fails.
func GenerateFallback() []byte {
	return []byte(fallbackSVG)
}
