package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/productcatalog/catalog-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"duplicate username", domain.ErrUserExists, http.StatusBadRequest},
		{"login failed", domain.ErrLoginFailed, http.StatusBadRequest},
		{"missing token", domain.ErrMissingToken, http.StatusUnauthorized},
		{"invalid token", domain.ErrTokenInvalid, http.StatusForbidden},
		{"expired token", domain.ErrTokenExpired, http.StatusForbidden},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound},
		{"unexpected", errors.New("driver exploded"), http.StatusInternalServerError},
		{"echo error", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewHTTPErrorHandler(zerolog.Nop())
			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}

func TestHTTPErrorHandler_NoInternalLeak(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(errors.New("pq: connection refused at 10.0.0.3"), c)

	if body := rec.Body.String(); body == "" || body[0] != '{' {
		t.Fatalf("expected json envelope, got %q", body)
	}
	if rec.Body.String() != "{\"error\":\"internal server error\"}\n" {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
}
