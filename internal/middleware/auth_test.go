package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/elegantbudget/budget-go/internal/crypto"
	"github.com/elegantbudget/budget-go/internal/model"
)

const testSecret = "test-secret"

func gatedHandler(t *testing.T, captured *model.AuthUser) http.Handler {
	t.Helper()
	return Authenticate(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			t.Error("expected identity on request context")
		}
		*captured = user
		w.WriteHeader(http.StatusOK)
	}))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	return body
}

func TestAuthenticateMissingToken(t *testing.T) {
	var captured model.AuthUser
	handler := gatedHandler(t, &captured)

	for _, header := range []string{"", "Bearer ", "Basic abc", "just-a-token"} {
		req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rr.Code)
		}
		if body := decodeError(t, rr); body["error"] != "NO_TOKEN" {
			t.Errorf("header %q: error = %q, want NO_TOKEN", header, body["error"])
		}
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	var captured model.AuthUser
	handler := gatedHandler(t, &captured)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rr.Code)
	}
	if body := decodeError(t, rr); body["error"] != "INVALID_TOKEN" {
		t.Errorf("error = %q, want INVALID_TOKEN", body["error"])
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	var captured model.AuthUser
	handler := gatedHandler(t, &captured)

	token, err := crypto.GenerateToken(&model.User{ID: "u1", Name: "Ann", Email: "ann@x.com"}, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rr.Code)
	}
}

func TestAuthenticateValidToken(t *testing.T) {
	var captured model.AuthUser
	handler := gatedHandler(t, &captured)

	user := &model.User{ID: "u1", Name: "Ann", Email: "ann@x.com"}
	token, err := crypto.GenerateToken(user, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if captured.ID != user.ID || captured.Name != user.Name || captured.Email != user.Email {
		t.Errorf("identity = %+v, want %+v", captured, user)
	}
}
