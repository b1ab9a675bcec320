package media_test

import (
	"context"
	"testing"

	"github.com/drussmiller/sparta-media-go/internal/mock"
	mediaSvc "github.com/drussmiller/sparta-media-go/internal/usecase/media"
)

func TestRunRepair_FixesMislabeledObject(t *testing.T) {
	strg := &mock.Storage{Files: map[string][]byte{
		"thumbnails/clip.mov": []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`),
	}}

	svc := mediaSvc.NewRepairRunner(strg)
	summary, err := svc.RunRepair(context.Background(), mediaSvc.RunRepairInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Fixed != 1 {
		t.Errorf("fixed = %d; want 1", summary.Fixed)
	}
	if _, ok := strg.Files["thumbnails/clip.svg"]; !ok {
		t.Error("mislabeled object was not renamed")
	}
}

func TestRunRepair_CustomRoots(t *testing.T) {
	strg := &mock.Storage{Files: map[string][]byte{
		"thumbnails/clip.mov": []byte(`<svg/>`),
	}}

	svc := mediaSvc.NewRepairRunner(strg)
	summary, err := svc.RunRepair(context.Background(), mediaSvc.RunRepairInput{
		Roots:   []string{"somewhere-else/"},
		Workers: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Checked != 0 {
		t.Errorf("checked = %d; configured roots must limit the walk", summary.Checked)
	}
}
