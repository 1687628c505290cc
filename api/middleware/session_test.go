package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func captureSession(t *testing.T, mw func(http.Handler) http.Handler, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var seen string
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return seen, rec
}

func TestSessionIssuesCookie(t *testing.T) {
	mw := Session(SessionOptions{CookieName: "sf", MaxAge: time.Hour}, nil)

	seen, rec := captureSession(t, mw, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected uuid session id, got %q", seen)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	if cookies[0].Name != "sf" || cookies[0].Value != seen {
		t.Fatalf("unexpected cookie %+v", cookies[0])
	}
	if !cookies[0].HttpOnly || cookies[0].MaxAge != 3600 {
		t.Fatalf("unexpected cookie attributes %+v", cookies[0])
	}
}

func TestSessionReusesValidCookie(t *testing.T) {
	mw := Session(SessionOptions{}, nil)
	existing := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: defaultSessionCookie, Value: existing})

	seen, rec := captureSession(t, mw, req)

	if seen != existing {
		t.Fatalf("expected %s got %s", existing, seen)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("expected no new cookie")
	}
}

func TestSessionReplacesMalformedCookie(t *testing.T) {
	mw := Session(SessionOptions{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: defaultSessionCookie, Value: "not-a-uuid"})

	seen, rec := captureSession(t, mw, req)

	if seen == "not-a-uuid" || seen == "" {
		t.Fatalf("expected fresh session id, got %q", seen)
	}
	if len(rec.Result().Cookies()) != 1 {
		t.Fatalf("expected replacement cookie")
	}
}
