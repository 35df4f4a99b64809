package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/productcatalog/catalog-api/internal/core/domain"
)

// RBAC enforces role-based access control. A role mismatch is a 403 distinct
// from authentication failure: the caller is known, just not permitted.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": domain.ErrForbidden.Error()})
			}
			return next(c)
		}
	}
}
