// ABOUTME: Tests for JWT verification and generation.

package auth

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndVerify(t *testing.T) {
	v := NewJWTVerifier([]byte("test-secret"))

	token, err := v.Generate("cli", []string{"contacts", "calendars"}, time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "cli" {
		t.Errorf("Subject = %q", claims.Subject)
	}
	if len(claims.Capabilities) != 2 || claims.Capabilities[0] != "contacts" {
		t.Errorf("Capabilities = %v", claims.Capabilities)
	}
}

func TestVerifyNoCaps(t *testing.T) {
	v := NewJWTVerifier([]byte("test-secret"))

	token, err := v.Generate("cli", nil, time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	claims, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Capabilities != nil {
		t.Errorf("Capabilities = %v, want nil", claims.Capabilities)
	}
}

func TestVerifyExpired(t *testing.T) {
	v := NewJWTVerifier([]byte("test-secret"))

	token, err := v.Generate("cli", nil, -time.Minute)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := v.Verify(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	v := NewJWTVerifier([]byte("secret-a"))
	other := NewJWTVerifier([]byte("secret-b"))

	token, err := v.Generate("cli", nil, time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	v := NewJWTVerifier([]byte("test-secret"))
	if _, err := v.Verify("not-a-jwt"); err == nil {
		t.Fatal("expected error")
	}
}
