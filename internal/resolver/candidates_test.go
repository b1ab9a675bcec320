package resolver

import (
	"reflect"
	"testing"
)

func TestCandidateKeys_Deterministic(t *testing.T) {
	a := CandidateKeys("abc123", ".mov")
	b := CandidateKeys("abc123", ".mov")
	if !reflect.DeepEqual(a, b) {
		t.Error("same inputs produced different candidate lists")
	}
}

func TestCandidateKeys_CanonicalFirst(t *testing.T) {
	cands := CandidateKeys("abc123", ".mov")
	if len(cands) == 0 {
		t.Fatal("no candidates")
	}
	if cands[0].Key != "thumbnails/abc123.jpg" {
		t.Errorf("first candidate = %q; want canonical key", cands[0].Key)
	}
	for i := 1; i < len(cands); i++ {
		if cands[i].Priority < cands[i-1].Priority {
			t.Fatalf("priorities out of order at %d: %d after %d", i, cands[i].Priority, cands[i-1].Priority)
		}
	}
}

func TestCandidateKeys_VideoOnlyForms(t *testing.T) {
	withExt := CandidateKeys("abc123", ".mov")
	without := CandidateKeys("abc123", "")

	if len(withExt) != 11 {
		t.Errorf("with video ext: got %d candidates; want 11", len(withExt))
	}
	if len(without) != 8 {
		t.Errorf("without video ext: got %d candidates; want 8", len(without))
	}

	found := false
	for _, c := range withExt {
		if c.Key == "thumbnails/abc123.mov" {
			found = true
		}
	}
	if !found {
		t.Error("extension-swapped candidate missing")
	}
}

func TestCandidateKeys_DedupesCollidingForms(t *testing.T) {
	// a ".jpg" source extension collapses the extension-swapped form onto
	// the canonical key
	cands := CandidateKeys("abc123", ".jpg")
	seen := make(map[string]bool)
	for _, c := range cands {
		if seen[c.Key] {
			t.Fatalf("duplicate candidate %q", c.Key)
		}
		seen[c.Key] = true
	}
}

func TestNormaliseExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{".mov", ".mov"},
		{"mov", ".mov"},
		{" .MOV ", ".mov"},
	}
	for _, tt := range tests {
		if got := normaliseExt(tt.in); got != tt.want {
			t.Errorf("normaliseExt(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
