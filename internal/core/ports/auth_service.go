package ports

import (
	"context"

	"github.com/mercatto/account-service/internal/core/domain"
)

// AuthService implements registration and credential-based login.
type AuthService interface {
	Register(ctx context.Context, in CreateAccountInput) (*domain.Account, error)
	// Login verifies the credentials and returns the account together with a
	// freshly issued bearer token. Unknown email and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*domain.Account, string, error)
}
