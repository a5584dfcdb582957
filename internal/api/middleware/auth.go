package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mercatto/account-service/internal/api/metrics"
	"github.com/mercatto/account-service/internal/core/domain"
	"github.com/mercatto/account-service/internal/token"
)

// accountContextKey is where Authenticate stores the resolved account.
const accountContextKey = "auth.account"

// TokenResolver verifies a bearer token and returns its claims.
type TokenResolver interface {
	Resolve(tokenStr string) (*token.Claims, error)
}

// AccountFinder loads the live account for a token subject.
type AccountFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}

// Authenticate resolves the bearer token and attaches the live account
// record to the request context. The account is always re-read from the
// store so a role change or deletion takes effect immediately instead of
// at token expiry.
//
// Token verification sub-failures (bad signature, expiry, malformed shape)
// are collapsed into a single outward error; the detail is recorded in
// metrics only.
func Authenticate(tokens TokenResolver, accounts AccountFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrAuthenticationRequired
			}

			// The scheme word is matched exactly; "bearer" is not accepted.
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return domain.ErrAuthenticationRequired
			}

			claims, err := tokens.Resolve(parts[1])
			if err != nil {
				metrics.TokenFailuresTotal.WithLabelValues(tokenFailureReason(err)).Inc()
				return domain.ErrInvalidOrExpiredToken
			}

			account, err := accounts.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrAccountNotFound) {
					// A deleted account is treated as unauthenticated, not
					// as a stale token.
					return domain.ErrAuthenticationRequired
				}
				return err
			}

			c.Set(accountContextKey, account)
			return next(c)
		}
	}
}

// CurrentAccount returns the account attached by Authenticate, if any.
func CurrentAccount(c echo.Context) (*domain.Account, bool) {
	account, ok := c.Get(accountContextKey).(*domain.Account)
	return account, ok
}

func tokenFailureReason(err error) string {
	switch {
	case errors.Is(err, token.ErrExpired):
		return "expired"
	case errors.Is(err, token.ErrSignatureInvalid):
		return "signature"
	default:
		return "malformed"
	}
}
