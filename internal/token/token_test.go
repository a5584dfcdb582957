package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mercatto/account-service/internal/core/domain"
)

func TestIssueResolve_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed, err := svc.Issue("user-1", "alice@example.com", domain.RoleAdmin, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Resolve(signed)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatalf("expected issued-at and expiry to be set")
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Fatalf("expected default ttl of 1h, got %v", ttl)
	}
}

func TestResolve_Expired(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed, err := svc.Issue("user-1", "a@example.com", domain.RoleUser, -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Resolve(signed); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestResolve_WrongSecret(t *testing.T) {
	issuer := NewService("secret-one", time.Hour)
	verifier := NewService("secret-two", time.Hour)

	signed, err := issuer.Issue("user-1", "a@example.com", domain.RoleUser, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Resolve(signed); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestResolve_TamperedPayload(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed, err := svc.Issue("user-1", "a@example.com", domain.RoleUser, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments")
	}
	// Flip a character inside the payload segment.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := svc.Resolve(tampered); err == nil {
		t.Fatalf("expected error for tampered token")
	}
}

func TestResolve_Garbage(t *testing.T) {
	svc := NewService("secret", time.Hour)

	for _, in := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := svc.Resolve(in); !errors.Is(err, ErrMalformed) {
			t.Fatalf("input %q: expected ErrMalformed, got %v", in, err)
		}
	}
}

func TestResolve_TruncatedToken(t *testing.T) {
	svc := NewService("secret", time.Hour)

	signed, err := svc.Issue("user-1", "a@example.com", domain.RoleUser, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Resolve(signed[:len(signed)-10]); err == nil {
		t.Fatalf("expected error for truncated token")
	}
}
