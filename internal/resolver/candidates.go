// Package resolver locates a previously stored thumbnail across every
// naming convention the system has ever used. The asset's true location
// cannot be known without probing, so resolution is an exhaustive
// first-hit-wins walk over a small, bounded candidate list.
package resolver

import (
	"sort"
	"strings"
)

// StorageKeyCandidate is a hypothesis about where an asset's thumbnail might
// physically live. Lower priority is tried first.
type StorageKeyCandidate struct {
	Key      string
	Priority int
}

// sourceExt is a placeholder expanded to the asset's original video
// extension. It covers the historical fallback generator that wrote vector
// bytes under the video container's extension.
const sourceExt = "{source}"

// candidateSpec is one naming convention. The table is deliberately plain
// data: appending a newly discovered convention must never require touching
// resolution logic.
type candidateSpec struct {
	prefix    string
	suffix    string
	ext       string
	priority  int
	videoOnly bool
}

var candidateSpecs = []candidateSpec{
	// 1. canonical key under the current convention
	{prefix: "thumbnails/", ext: ".jpg", priority: 0},
	// 2. same key under roots used by earlier deployments
	{prefix: "uploads/thumbnails/", ext: ".jpg", priority: 10},
	{prefix: "media/thumbnails/", ext: ".jpg", priority: 11},
	// 3. role-suffix variants
	{prefix: "thumbnails/", suffix: "-poster", ext: ".webp", priority: 20},
	{prefix: "thumbnails/", suffix: "-thumb", ext: ".jpg", priority: 21},
	{prefix: "thumbnails/", suffix: "_thumb", ext: ".jpg", priority: 22},
	// 4. prefix-stripped and prefix-added legacy forms
	{prefix: "", ext: ".jpg", priority: 30},
	{prefix: "uploads/", ext: ".jpg", priority: 31},
	// 5. extension-swapped forms, only meaningful for video sources
	{prefix: "thumbnails/", ext: ".png", priority: 40, videoOnly: true},
	{prefix: "thumbnails/", ext: ".svg", priority: 41, videoOnly: true},
	{prefix: "thumbnails/", ext: sourceExt, priority: 42, videoOnly: true},
}

// CandidateKeys expands the convention table for one logical asset id.
// videoExt is the asset's original container extension (".mov", ".mp4", …),
// empty when unknown or not a video. The list is total and deterministic:
// the same id always yields the same ordered keys.
func CandidateKeys(logicalID, videoExt string) []StorageKeyCandidate {
	videoExt = normaliseExt(videoExt)

	var out []StorageKeyCandidate
	seen := make(map[string]bool)
	for _, spec := range candidateSpecs {
		if spec.videoOnly && videoExt == "" {
			continue
		}
		ext := spec.ext
		if ext == sourceExt {
			ext = videoExt
		}
		key := spec.prefix + logicalID + spec.suffix + ext
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, StorageKeyCandidate{Key: key, Priority: spec.priority})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

func normaliseExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
