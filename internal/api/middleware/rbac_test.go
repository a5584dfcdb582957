package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mercatto/account-service/internal/core/domain"
)

func TestRequireRole_Allows(t *testing.T) {
	c := testContext(t, "")
	c.Set(accountContextKey, &domain.Account{ID: "id-1", Role: domain.RoleAdmin})

	called := false
	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	c := testContext(t, "")
	c.Set(accountContextKey, &domain.Account{ID: "id-1", Role: domain.RoleUser})

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRole_WithoutAuthenticate(t *testing.T) {
	// Stage ordering violation: no identity attached means the request is
	// unauthenticated, not forbidden, whatever roles are required.
	c := testContext(t, "")

	handler := RequireRole(domain.RoleAdmin, domain.RoleUser)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrAuthenticationRequired) {
		t.Fatalf("expected ErrAuthenticationRequired, got %v", err)
	}
}
