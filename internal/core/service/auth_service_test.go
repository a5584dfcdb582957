package service

import (
	"context"
	"testing"
	"time"

	"github.com/mercatto/account-service/internal/core/domain"
	"github.com/mercatto/account-service/internal/core/ports"
	"github.com/mercatto/account-service/internal/token"
)

func newAuthService() (*AuthService, *token.Service) {
	repo := newStubAccountRepo()
	accounts := NewAccountService(repo)
	tokens := token.NewService("secret", time.Hour)
	return NewAuthService(accounts, repo, tokens), tokens
}

func TestAuthService_RegisterLogin_Success(t *testing.T) {
	svc, tokens := newAuthService()

	registered, err := svc.Register(context.Background(), ports.CreateAccountInput{
		Email:    "carol@example.com",
		Password: "s3cretpass",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	account, signed, err := svc.Login(context.Background(), "carol@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}
	if account.ID != registered.ID {
		t.Fatalf("unexpected account: %+v", account)
	}

	claims, err := tokens.Resolve(signed)
	if err != nil {
		t.Fatalf("token does not resolve: %v", err)
	}
	if claims.UserID != registered.ID {
		t.Fatalf("claim subject mismatch: %s", claims.UserID)
	}
	if claims.Email != "carol@example.com" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newAuthService()

	_, _ = svc.Register(context.Background(), ports.CreateAccountInput{Email: "dave@example.com", Password: "goodpass1"})
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass99"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newAuthService()

	// Unknown email collapses to the same error as a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc, _ := newAuthService()

	if _, _, err := svc.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
