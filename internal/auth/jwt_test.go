package auth

import (
	"testing"
	"time"
)

func testManager() *Manager {
	return &Manager{
		Secret:     []byte("test-secret"),
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
		Issuer:     "properly-backend",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := testManager()
	token, err := m.NewAccessToken("user-1", "admin")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected role admin, got %q", claims.Role)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject user-1, got %q", claims.Subject)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := testManager()
	token, err := m.NewAccessToken("user-1", "admin")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	other := testManager()
	other.Secret = []byte("different-secret")
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected parse error for wrong secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := testManager()
	m.AccessTTL = -time.Minute
	token, err := m.NewAccessToken("user-1", "admin")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected parse error for expired token")
	}
}
