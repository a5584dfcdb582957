package handler

import (
	"github.com/mercatto/account-service/internal/core/domain"
	"github.com/mercatto/account-service/internal/core/ports"
)

// errorResponse documents the error envelope rendered by the central error
// handler; handlers never build it themselves.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// --- Request types ---

type createAccountRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	Name     string `json:"name,omitempty" validate:"omitempty,max=100"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=USER ADMIN"`
}

func (r createAccountRequest) toInput() ports.CreateAccountInput {
	return ports.CreateAccountInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Role:     domain.Role(r.Role),
	}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateAccountRequest struct {
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=100"`
	Name     *string `json:"name"     validate:"omitempty,max=100"`
	Role     *string `json:"role"     validate:"omitempty,oneof=USER ADMIN"`
}

func (r updateAccountRequest) toInput() ports.UpdateAccountInput {
	in := ports.UpdateAccountInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
	}
	if r.Role != nil {
		role := domain.Role(*r.Role)
		in.Role = &role
	}
	return in
}

// --- Response types ---

// Responses only ever carry the public projection; the internal record with
// the credential digest has no JSON shape at all.

type accountResponse struct {
	Account domain.PublicAccount `json:"account"`
}

type authResponse struct {
	Token   string               `json:"token,omitempty"`
	Account domain.PublicAccount `json:"account"`
}

type listAccountsResponse struct {
	Total    int                    `json:"total"`
	Accounts []domain.PublicAccount `json:"accounts"`
}

func toPublicList(accounts []domain.Account) []domain.PublicAccount {
	out := make([]domain.PublicAccount, 0, len(accounts))
	for i := range accounts {
		out = append(out, accounts[i].Public())
	}
	return out
}
