// Package token issues and verifies the stateless bearer tokens used for
// session authentication. Tokens are HS256-signed JWTs carrying the identity
// claim; validity is purely a function of signature and expiry, nothing is
// persisted server-side.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mercatto/account-service/internal/core/domain"
)

// Verification failures, kept distinct here so callers can decide how much
// detail to expose. The HTTP gate collapses all three into a single
// "invalid or expired token" response.
var (
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
	ErrMalformed        = errors.New("token malformed")
)

// Claims is the identity embedded in a token. Immutable once issued.
type Claims struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a single server-held secret.
type Service struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewService builds a token Service. A non-positive defaultTTL falls back
// to 24 hours.
func NewService(secret string, defaultTTL time.Duration) *Service {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}
	return &Service{secret: []byte(secret), defaultTTL: defaultTTL}
}

// Issue mints a signed token for the given identity. A non-positive ttl
// uses the service default.
func (s *Service) Issue(userID string, email string, role domain.Role, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	now := time.Now().UTC()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Resolve verifies the token and returns the embedded claims. The signing
// method is pinned to HS256; a token signed with any other algorithm is
// rejected as ErrSignatureInvalid.
func (s *Service) Resolve(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			return nil, ErrMalformed
		}
	}
	if !parsed.Valid || claims.UserID == "" {
		return nil, ErrMalformed
	}
	return claims, nil
}
