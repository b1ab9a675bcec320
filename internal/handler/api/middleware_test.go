package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
)

func TestWithJWTAuth_EmptySecretPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/repair", nil)
	rr := httptest.NewRecorder()
	WithJWTAuth("")(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d; want passthrough", rr.Code)
	}
}

func TestWithJWTAuth_MissingToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without a token")
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/repair", nil)
	rr := httptest.NewRecorder()
	WithJWTAuth("secret")(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want 401", rr.Code)
	}
}

func TestWithJWTAuth_ValidToken(t *testing.T) {
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ops"}).
		SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/repair", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rr := httptest.NewRecorder()
	WithJWTAuth("secret")(next).ServeHTTP(rr, req)

	if !reached || rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, reached = %v; want authorised passthrough", rr.Code, reached)
	}
}

func TestWithJWTAuth_WrongSecret(t *testing.T) {
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{}).
		SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatal(err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached with a badly signed token")
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/repair", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rr := httptest.NewRecorder()
	WithJWTAuth("secret")(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want 401", rr.Code)
	}
}
