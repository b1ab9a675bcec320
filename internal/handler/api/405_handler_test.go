package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMethodNotAllowedHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/files/clip.jpg", nil)
	rr := httptest.NewRecorder()

	MethodNotAllowedHandler()(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d; want 405", rr.Code)
	}
	var msg string
	if err := json.NewDecoder(rr.Body).Decode(&msg); err != nil {
		t.Fatalf("body is not a JSON string: %v", err)
	}
	if !strings.Contains(msg, http.MethodDelete) || !strings.Contains(msg, "/files/clip.jpg") {
		t.Errorf("message %q does not name the rejected method and path", msg)
	}
}
