package ports

import (
	"context"

	"github.com/mercatto/account-service/internal/core/domain"
)

// AccountRepository defines the persistence contract for user accounts.
// Lookups return domain.ErrAccountNotFound when no record matches; Create
// and Update surface domain.ErrEmailTaken on a uniqueness violation.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Account, error)
}
