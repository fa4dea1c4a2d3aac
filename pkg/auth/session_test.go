package auth

import (
	"strings"
	"testing"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	id := Identity{UID: "uid-1", Email: "owner@example.com", EmailVerified: true}

	token, err := CreateSessionToken(id, secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := VerifySessionToken(token, secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Errorf("expected %+v, got %+v", id, got)
	}
}

func TestSessionToken_TamperedSignature(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	token, _ := CreateSessionToken(Identity{UID: "uid-1"}, secret)

	parts := strings.SplitN(token, ".", 2)
	tampered := parts[0] + "." + strings.Repeat("0", len(parts[1]))
	if _, err := VerifySessionToken(tampered, secret); err == nil {
		t.Error("expected verification failure for tampered signature")
	}
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, _ := CreateSessionToken(Identity{UID: "uid-1"}, SessionSecretBytes("secret-a"))
	if _, err := VerifySessionToken(token, SessionSecretBytes("secret-b")); err == nil {
		t.Error("expected verification failure with a different secret")
	}
}

func TestSessionToken_MalformedToken(t *testing.T) {
	if _, err := VerifySessionToken("not-a-token", SessionSecretBytes("s")); err == nil {
		t.Error("expected error for token without separator")
	}
}

func TestSessionSecretBytes_PadsShortSecrets(t *testing.T) {
	b := SessionSecretBytes("short")
	if len(b) < minSecretLen {
		t.Errorf("expected at least %d bytes, got %d", minSecretLen, len(b))
	}
}
