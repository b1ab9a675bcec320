package media

import "time"

const MinFileSize = 1         // bytes; empty uploads are rejected outright
const MaxFileSize = 512 << 20 // 512 MB

// DefaultOffsets is the ordered sequence of extraction attempts, in seconds.
// Biased toward skipping an initial black or blank frame while still working
// for very short clips.
var DefaultOffsets = []float64{1.0, 2.0, 0.5, 3.0, 0.1}

// ResolvedKeyTTL bounds how long the serving path trusts a cached
// ref-to-key resolution.
const ResolvedKeyTTL = 15 * time.Minute

var allowedVideoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".webm": true,
	".avi":  true,
	".mpg":  true,
	".mpeg": true,
	".3gp":  true,
}

func IsExtensionAllowed(ext string) bool {
	return allowedVideoExtensions[ext]
}
