package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mercatto/account-service/internal/core/domain"
)

func renderError(t *testing.T, err error, development bool) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), development)(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, resp
}

func TestErrorHandler_TaxonomyMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrAuthenticationRequired, http.StatusUnauthorized},
		{domain.ErrInvalidOrExpiredToken, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
	}

	for _, tc := range cases {
		rec, resp := renderError(t, tc.err, false)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if resp.Status != "error" || resp.Message == "" {
			t.Fatalf("%v: malformed envelope: %+v", tc.err, resp)
		}
	}
}

func TestErrorHandler_WrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("update account"), domain.ErrEmailTaken)
	rec, _ := renderError(t, wrapped, false)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for wrapped conflict, got %d", rec.Code)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, resp := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "email is required"), false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp.Message != "email is required" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestErrorHandler_InternalHidesDetail(t *testing.T) {
	rec, resp := renderError(t, errors.New("pq: connection refused"), false)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp.Message != "internal server error" || resp.Detail != "" {
		t.Fatalf("internal detail leaked: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("raw error leaked into body: %s", rec.Body.String())
	}
}

func TestErrorHandler_InternalDetailInDevelopment(t *testing.T) {
	_, resp := renderError(t, errors.New("pq: connection refused"), true)
	if resp.Detail != "pq: connection refused" {
		t.Fatalf("expected detail in development mode, got %+v", resp)
	}
}
