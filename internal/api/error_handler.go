package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mercatto/account-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	// Detail carries the underlying error text in development mode only.
	Detail string `json:"detail,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the operational error taxonomy to deterministic status codes.
//   - Logs unexpected errors internally without leaking details to the
//     client (outside development mode).
//   - Renders a consistent JSON envelope: {"status":"error","message":...}.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, internal := resolveError(err, log, c)

		resp := errorResponse{Status: "error", Message: msg}
		if internal && development {
			resp.Detail = err.Error()
		}
		_ = c.JSON(code, resp)
	}
}

// resolveError maps an error to its status code and outward message. The
// third return reports whether the error was unexpected (non-operational).
func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, bool) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), false
	}

	// Operational errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error(), false
	case errors.Is(err, domain.ErrAuthenticationRequired):
		return http.StatusUnauthorized, "authentication required", false
	case errors.Is(err, domain.ErrInvalidOrExpiredToken):
		return http.StatusUnauthorized, "invalid or expired token", false
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password", false
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "you do not have permission to access this resource", false
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "account not found", false
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "email already registered", false
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", true
}
