package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mercatto/account-service/internal/api/middleware"
	"github.com/mercatto/account-service/internal/core/domain"
)

// currentAccount extracts the account attached by the Authenticate
// middleware. Its absence means the route was registered without the
// middleware; fail closed as unauthenticated.
func currentAccount(c echo.Context) (*domain.Account, error) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		return nil, domain.ErrAuthenticationRequired
	}
	return account, nil
}
