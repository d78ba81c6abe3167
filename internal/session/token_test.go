package session

import (
	"testing"
	"time"
)

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()

	if len(a) != 32 {
		t.Errorf("id length = %d, want 32 hex chars", len(a))
	}
	if a == b {
		t.Error("ids must be unique")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	const secret = "test-secret-key-for-token-signing"

	token, err := GenerateToken("session-123", secret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatal(err)
	}
	if claims.SessionID != "session-123" {
		t.Errorf("session id = %q", claims.SessionID)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("session-123", "right-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken(token, "wrong-secret"); err == nil {
		t.Error("token signed with a different secret must not parse")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("session-123", "secret", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken(token, "secret"); err == nil {
		t.Error("expired token must not parse")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-jwt", "secret"); err == nil {
		t.Error("garbage input must not parse")
	}
}
