package thumbnail

import (
	"bytes"
	"encoding/xml"
	"testing"
)

func TestGenerateFallback_Deterministic(t *testing.T) {
	a := GenerateFallback()
	b := GenerateFallback()
	if !bytes.Equal(a, b) {
		t.Error("fallback bytes differ between calls")
	}
	if len(a) == 0 {
		t.Fatal("fallback is empty")
	}
}

func TestGenerateFallback_IsWellFormedSVG(t *testing.T) {
	data := GenerateFallback()
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Errorf("fallback does not start with an svg element: %q", data[:16])
	}

	var doc struct {
		XMLName xml.Name `xml:"svg"`
		Width   string   `xml:"width,attr"`
		Height  string   `xml:"height,attr"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("fallback is not well-formed XML: %v", err)
	}
	if doc.Width != "480" || doc.Height != "270" {
		t.Errorf("dimensions = %sx%s; want 480x270", doc.Width, doc.Height)
	}
}
