package jwt

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 10086, "access", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 10086 {
		t.Fatalf("user id = %d, want 10086", claims.UserID)
	}
	if claims.Type != "access" {
		t.Fatalf("type = %s, want access", claims.Type)
	}
}

func TestParseWrongType(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 1, "refresh", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for mismatched token type")
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), 1, "access", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken([]byte("secret-b"), "access", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 1, "access", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}
