package resolver

// Canonical key construction for the current naming convention. The repair
// scanner and the pipeline both build keys through these helpers so the
// write side and the read side cannot drift apart again.

const (
	ThumbRoot  = "thumbnails/"
	UploadRoot = "uploads/"

	ThumbExt  = ".jpg"
	PosterExt = ".webp"
	VectorExt = ".svg"
)

// SourceObjectKey is where an uploaded video lives.
func SourceObjectKey(logicalID, videoExt string) string {
	return UploadRoot + logicalID + normaliseExt(videoExt)
}

// CanonicalThumbKey is the current-convention key for the primary thumbnail.
func CanonicalThumbKey(logicalID string) string {
	return ThumbRoot + logicalID + ThumbExt
}

// PosterKey is the current-convention key for the WebP poster variant.
func PosterKey(logicalID string) string {
	return ThumbRoot + logicalID + "-poster" + PosterExt
}

// FallbackKey is the current-convention key for the vector placeholder.
func FallbackKey(logicalID string) string {
	return ThumbRoot + logicalID + VectorExt
}

// LegacyDuplicateKeys are the historical locations the pipeline still writes
// the primary bytes to when legacy writes are enabled. Deliberate design
// debt: consumers deployed against old layouts read these directly.
func LegacyDuplicateKeys(logicalID string) []string {
	return []string{
		UploadRoot + ThumbRoot + logicalID + ThumbExt,
		ThumbRoot + logicalID + "-thumb" + ThumbExt,
	}
}

// CanonicalKeyFor maps an arbitrary thumbnail key extension to the canonical
// location its content should live at.
func CanonicalKeyFor(logicalID, ext string) string {
	switch normaliseExt(ext) {
	case PosterExt:
		return PosterKey(logicalID)
	case VectorExt:
		return FallbackKey(logicalID)
	default:
		return CanonicalThumbKey(logicalID)
	}
}
