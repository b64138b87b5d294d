package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"
)

func newTestManager(t *testing.T, ttl time.Duration) (*Generator, *Verifier) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	gen := NewGenerator(key, "gari-service", "gari-users", "test-key", ttl)
	ver := NewVerifier(&key.PublicKey, "gari-service", "gari-users")
	return gen, ver
}

func TestGenerateAndVerify(t *testing.T) {
	gen, ver := newTestManager(t, time.Hour)

	token, jti, err := gen.Generate(42, "seller@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if jti == "" {
		t.Fatal("expected non-empty jti")
	}

	claims, err := ver.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "seller@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.ID != jti {
		t.Errorf("jti mismatch: %q vs %q", claims.ID, jti)
	}
}

func TestVerifyExpired(t *testing.T) {
	gen, ver := newTestManager(t, -time.Minute)

	token, _, err := gen.Generate(1, "x@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := ver.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestVerifyWrongIssuer(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	gen := NewGenerator(key, "someone-else", "gari-users", "", time.Hour)
	ver := NewVerifier(&key.PublicKey, "gari-service", "gari-users")

	token, _, err := gen.Generate(1, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := ver.Verify(token); err == nil {
		t.Fatal("expected issuer mismatch to fail verification")
	}
}
