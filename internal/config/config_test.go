package config

import (
	"reflect"
	"testing"
)

func TestParseOffsets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []float64
	}{
		{"empty falls back", "", nil},
		{"standard sequence", "1,2,0.5,3,0.1", []float64{1, 2, 0.5, 3, 0.1}},
		{"spaces tolerated", " 1.5 , 2 ", []float64{1.5, 2}},
		{"malformed entry discards all", "1,abc,2", nil},
		{"negative discards all", "1,-2", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseOffsets(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseOffsets(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"thumbnails/", []string{"thumbnails/"}},
		{"a/, b/ ,,c/", []string{"a/", "b/", "c/"}},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}
