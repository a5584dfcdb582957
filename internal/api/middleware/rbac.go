package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/mercatto/account-service/internal/core/domain"
)

// RequireRole enforces role-based access control. It must run after
// Authenticate; a request with no attached account fails as
// unauthenticated regardless of the required roles.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, ok := CurrentAccount(c)
			if !ok {
				return domain.ErrAuthenticationRequired
			}
			if _, ok := allowed[account.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
