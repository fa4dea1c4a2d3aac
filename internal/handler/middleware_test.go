package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIP_FromForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Errorf("expected 203.0.113.7, got %q", got)
	}
}

// With one trusted proxy, the rightmost entry it appended wins; earlier
// entries are client-controlled and must be ignored.
func TestClientIP_SpoofedChainIgnored(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "6.6.6.6, 203.0.113.7")
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Errorf("expected trusted entry 203.0.113.7, got %q", got)
	}
}

func TestClientIP_FallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.9:4567"
	if got := ClientIP(req); got != "192.0.2.9" {
		t.Errorf("expected 192.0.2.9, got %q", got)
	}
}

func TestSecurityHeaders_Set(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rec := httptest.NewRecorder()
	SecurityHeaders(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected nosniff header")
	}
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("expected frame deny header")
	}
}
