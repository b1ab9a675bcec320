package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drussmiller/sparta-media-go/internal/db"
	"github.com/drussmiller/sparta-media-go/internal/mock"
	"github.com/drussmiller/sparta-media-go/internal/model"
	"github.com/drussmiller/sparta-media-go/internal/usecase/media"
)

func TestRegisterUploadHandler_Success(t *testing.T) {
	svc := &mock.UploadRegistrar{Out: &model.MediaAsset{
		ID:        db.NewUUID(),
		SourceKey: "clip",
		Status:    model.AssetStatusPending,
	}}

	body := `{"source_key":"clip","extension":".mov"}`
	req := httptest.NewRequest(http.MethodPost, "/uploads", strings.NewReader(body))
	rr := httptest.NewRecorder()
	RegisterUploadHandler(svc)(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201; body %s", rr.Code, rr.Body.String())
	}
	if !svc.Called {
		t.Fatal("service not called")
	}
	if svc.In.SourceKey != "clip" || svc.In.Extension != ".mov" {
		t.Errorf("input = %+v", svc.In)
	}
}

func TestRegisterUploadHandler_InvalidJSON(t *testing.T) {
	svc := &mock.UploadRegistrar{}

	req := httptest.NewRequest(http.MethodPost, "/uploads", strings.NewReader("{"))
	rr := httptest.NewRecorder()
	RegisterUploadHandler(svc)(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rr.Code)
	}
	if svc.Called {
		t.Error("service called with malformed JSON")
	}
}

func TestRegisterUploadHandler_ValidationFailure(t *testing.T) {
	svc := &mock.UploadRegistrar{}

	// extension must start with a dot
	body := `{"source_key":"clip","extension":"mov"}`
	req := httptest.NewRequest(http.MethodPost, "/uploads", strings.NewReader(body))
	rr := httptest.NewRecorder()
	RegisterUploadHandler(svc)(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rr.Code)
	}
	if svc.Called {
		t.Error("service called with invalid input")
	}
}

func TestRegisterUploadHandler_DuplicateSourceKey(t *testing.T) {
	svc := &mock.UploadRegistrar{Err: media.ErrDuplicateSourceKey}

	body := `{"source_key":"clip","extension":".mov"}`
	req := httptest.NewRequest(http.MethodPost, "/uploads", strings.NewReader(body))
	rr := httptest.NewRecorder()
	RegisterUploadHandler(svc)(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d; want 409", rr.Code)
	}
}
