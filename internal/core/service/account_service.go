package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mercatto/account-service/internal/core/domain"
	"github.com/mercatto/account-service/internal/core/ports"
)

// AccountService implements CRUD over user accounts on top of an
// AccountRepository.
type AccountService struct {
	repo ports.AccountRepository
}

func NewAccountService(repo ports.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Create hashes the password and persists a new account. The email
// uniqueness check here is best-effort; the store's unique constraint is
// the authority and surfaces domain.ErrEmailTaken on a concurrent race.
func (s *AccountService) Create(ctx context.Context, in ports.CreateAccountInput) (*domain.Account, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, account)
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update. A changed email is re-checked for
// uniqueness and a changed password is re-hashed.
func (s *AccountService) Update(ctx context.Context, id string, in ports.UpdateAccountInput) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != account.Email {
		if _, err := s.repo.FindByEmail(ctx, *in.Email); err == nil {
			return nil, domain.ErrEmailTaken
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		account.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}
	if in.Name != nil {
		account.Name = *in.Name
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, domain.ErrInvalidInput
		}
		account.Role = *in.Role
	}
	account.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, account)
}

// Delete removes the account and returns the record as it was.
func (s *AccountService) Delete(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return account, nil
}
