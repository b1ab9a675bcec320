package media_test

import (
	"context"
	"errors"
	"testing"

	"github.com/drussmiller/sparta-media-go/internal/db"
	"github.com/drussmiller/sparta-media-go/internal/mock"
	"github.com/drussmiller/sparta-media-go/internal/model"
	mediaSvc "github.com/drussmiller/sparta-media-go/internal/usecase/media"
)

func TestRegisterUpload_Success(t *testing.T) {
	repo := &mock.AssetRepository{}
	id := db.NewUUID()

	svc := mediaSvc.NewUploadRegistrar(repo, func() db.UUID { return id })
	asset, err := svc.RegisterUpload(context.Background(), mediaSvc.RegisterUploadInput{
		SourceKey: "clip",
		Extension: ".mov",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if asset.ID != id {
		t.Error("asset did not get the injected id")
	}
	if asset.Status != model.AssetStatusPending {
		t.Errorf("status = %q; want pending", asset.Status)
	}
	if !repo.CreateCalled {
		t.Error("asset was not persisted")
	}
}

func TestRegisterUpload_NormalisesExtension(t *testing.T) {
	repo := &mock.AssetRepository{}
	svc := mediaSvc.NewUploadRegistrar(repo, db.NewUUID)

	asset, err := svc.RegisterUpload(context.Background(), mediaSvc.RegisterUploadInput{
		SourceKey: "clip",
		Extension: ".MOV",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.OriginalExtension != ".mov" {
		t.Errorf("extension = %q; want lower-cased", asset.OriginalExtension)
	}
}

func TestRegisterUpload_RejectsUnsupportedExtension(t *testing.T) {
	svc := mediaSvc.NewUploadRegistrar(&mock.AssetRepository{}, db.NewUUID)

	if _, err := svc.RegisterUpload(context.Background(), mediaSvc.RegisterUploadInput{
		SourceKey: "clip",
		Extension: ".exe",
	}); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestRegisterUpload_PropagatesRepoError(t *testing.T) {
	repo := &mock.AssetRepository{CreateErr: mediaSvc.ErrDuplicateSourceKey}
	svc := mediaSvc.NewUploadRegistrar(repo, db.NewUUID)

	_, err := svc.RegisterUpload(context.Background(), mediaSvc.RegisterUploadInput{
		SourceKey: "clip",
		Extension: ".mov",
	})
	if !errors.Is(err, mediaSvc.ErrDuplicateSourceKey) {
		t.Fatalf("got error %v; want ErrDuplicateSourceKey", err)
	}
}
