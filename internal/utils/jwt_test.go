package utils

import (
	"strings"
	"testing"
	"time"
)

func TestTokenService_SignVerify(t *testing.T) {
	svc := NewTokenService("s3cret", time.Hour)
	token, err := svc.Sign("a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected a JWT, got %q", token)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", claims.Email)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Errorf("expected 1h lifetime, got %v", got)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("s3cret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.Sign("a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := NewTokenService("one", time.Hour).Sign("a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewTokenService("two", time.Hour).Verify(token); err == nil {
		t.Fatal("expected signature mismatch to fail verification")
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("s3cret", time.Hour)
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(tok); err == nil {
			t.Errorf("Verify(%q): expected error", tok)
		}
	}
}

func TestTokenService_NoSecret(t *testing.T) {
	svc := NewTokenService("", time.Hour)
	if _, err := svc.Sign("a@x.com"); err != ErrNoSecret {
		t.Errorf("expected ErrNoSecret, got %v", err)
	}
	if _, err := svc.Verify("x"); err != ErrNoSecret {
		t.Errorf("expected ErrNoSecret, got %v", err)
	}
}

func TestTokenService_SignTwiceBothValid(t *testing.T) {
	svc := NewTokenService("s3cret", time.Hour)
	for i := 0; i < 2; i++ {
		token, err := svc.Sign("a@x.com")
		if err != nil {
			t.Fatalf("sign %d: %v", i, err)
		}
		if _, err := svc.Verify(token); err != nil {
			t.Fatalf("verify %d: %v", i, err)
		}
	}
}
