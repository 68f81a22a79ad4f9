package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestHandler(t *testing.T) (*AuthHandler, *AuthService) {
	t.Helper()
	svc, _ := newTestAuthService()
	return NewAuthHandler(svc, nil), svc
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postJSON(t, h.Register, "/register",
		`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","password":"Password1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "User registered successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// Same email again
	rec = postJSON(t, h.Register, "/register",
		`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","password":"Password1"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email address already in use") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// Weak password surfaces the first validation message
	rec = postJSON(t, h.Register, "/register",
		`{"firstName":"Jane","lastName":"Doe","email":"other@example.com","password":"short"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	// Absent fields fail before the service is reached
	rec = postJSON(t, h.Register, "/register", `{"email":"x@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Missing required fields") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLoginEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)

	postJSON(t, h.Register, "/register",
		`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","password":"Password1"}`)

	rec := postJSON(t, h.Login, "/login", `{"email":"jane@example.com","password":"Password1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		User    struct {
			ID      int64  `json:"id"`
			Email   string `json:"email"`
			AuthKey string `json:"auth_key"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Message != "Login successful" || resp.User.AuthKey == "" || resp.User.ID == 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatal("login response must never carry password material")
	}

	rec = postJSON(t, h.Login, "/login", `{"email":"jane@example.com","password":"Wrong1pass"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid email or password") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetUserIDEndpoint(t *testing.T) {
	h, svc := newTestHandler(t)

	user := register(t, svc, "jane@example.com", "Password1")

	req := httptest.NewRequest(http.MethodGet, "/getUserID?authKey="+user.AuthKey, nil)
	rec := httptest.NewRecorder()
	h.GetUserID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp["userId"] != user.ID {
		t.Fatalf("expected userId %d, got %v", user.ID, resp)
	}

	req = httptest.NewRequest(http.MethodGet, "/getUserID?authKey=bogus", nil)
	rec = httptest.NewRecorder()
	h.GetUserID(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid Auth key") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetUserEndpoint_OmitsPasswordHash(t *testing.T) {
	h, svc := newTestHandler(t)

	user := register(t, svc, "jane@example.com", "Password1")

	req := httptest.NewRequest(http.MethodGet, "/getUser?authKey="+user.AuthKey, nil)
	rec := httptest.NewRecorder()
	h.GetUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"firstName":"Test"`) || !strings.Contains(body, `"auth_key_expiry"`) {
		t.Fatalf("account fields missing from %s", body)
	}
	if strings.Contains(body, user.PasswordHash) || strings.Contains(body, "password_hash") {
		t.Fatal("password hash must never leave the service")
	}
}
