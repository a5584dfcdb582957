package service

import (
	"context"
	"errors"

	"github.com/mercatto/account-service/internal/core/domain"
	"github.com/mercatto/account-service/internal/core/ports"
	"github.com/mercatto/account-service/internal/token"
)

// AuthService implements registration and login.
type AuthService struct {
	accounts ports.AccountService
	repo     ports.AccountRepository
	tokens   *token.Service
}

func NewAuthService(accounts ports.AccountService, repo ports.AccountRepository, tokens *token.Service) *AuthService {
	return &AuthService{accounts: accounts, repo: repo, tokens: tokens}
}

// Register creates a new account. Registration is account creation; all the
// rules live in AccountService.Create.
func (s *AuthService) Register(ctx context.Context, in ports.CreateAccountInput) (*domain.Account, error) {
	return s.accounts.Create(ctx, in)
}

// Login verifies the credentials and issues a bearer token. An unknown
// email and a wrong password both come back as ErrInvalidCredentials so
// the response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Account, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !verifyPassword(password, account.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(account.ID, account.Email, account.Role, 0)
	if err != nil {
		return nil, "", err
	}

	return account, signed, nil
}
