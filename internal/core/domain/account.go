package domain

import (
	"errors"
	"time"
)

// Role is the closed set of authorization levels an account can hold.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole converts a raw string into a Role, reporting whether the value
// is a member of the closed set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrAuthenticationRequired = errors.New("authentication required")
var ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
var ErrForbidden = errors.New("access forbidden")
var ErrAccountNotFound = errors.New("account not found")
var ErrEmailTaken = errors.New("email already registered")

// Account is the full internal user record, including the credential digest.
// It never crosses the HTTP boundary; handlers render the Public projection.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicAccount is the boundary-safe projection of an Account. It has no
// credential field at all, so the hash cannot leak through serialization.
type PublicAccount struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public returns the boundary projection of the account.
func (a *Account) Public() PublicAccount {
	return PublicAccount{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
