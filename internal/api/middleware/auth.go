package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/productcatalog/catalog-api/internal/core/domain"
	"github.com/productcatalog/catalog-api/internal/core/token"
)

// Auth validates the bearer token and injects its claims into context.
// A missing or malformed Authorization header is a 401; a token that fails
// verification (bad signature or past expiry) is a 403.
func Auth(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMissingToken.Error())
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrMissingToken.Error())
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusForbidden, domain.ErrTokenExpired.Error())
				}
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrTokenInvalid.Error())
			}

			c.Set("user_id", claims.Subject)
			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
