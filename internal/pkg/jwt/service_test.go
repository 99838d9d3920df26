package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	id := uuid.New()
	tok, err := svc.Generate(id, "a@b.co")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != id {
		t.Fatalf("user id mismatch: %v != %v", claims.UserID, id)
	}
	if claims.Subject != id.String() {
		t.Fatalf("subject mismatch: %q", claims.Subject)
	}
	if claims.Email != "a@b.co" {
		t.Fatalf("email mismatch: %q", claims.Email)
	}
}

func TestHMACService_Expiry(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	base := time.Now()
	svc.now = func() time.Time { return base }

	tok, err := svc.Generate(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.Validate(tok); err != nil {
		t.Fatalf("token should be valid within the hour: %v", err)
	}

	svc.now = func() time.Time { return base.Add(61 * time.Minute) }
	if _, err := svc.Validate(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, err := NewHMACService("secret-a", time.Hour).Generate(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewHMACService("secret-b", time.Hour).Validate(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_Garbage(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	if _, err := svc.Validate("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
