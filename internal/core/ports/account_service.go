package ports

import (
	"context"

	"github.com/mercatto/account-service/internal/core/domain"
)

// CreateAccountInput carries the fields accepted when creating an account.
// Role defaults to domain.RoleUser when empty.
type CreateAccountInput struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

// UpdateAccountInput carries a partial update; nil fields are left untouched.
type UpdateAccountInput struct {
	Email    *string
	Password *string
	Name     *string
	Role     *domain.Role
}

// AccountService is the CRUD surface over user accounts. All methods return
// the full internal record; callers project before rendering.
type AccountService interface {
	Create(ctx context.Context, in CreateAccountInput) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, id string, in UpdateAccountInput) (*domain.Account, error)
	Delete(ctx context.Context, id string) (*domain.Account, error)
}
