package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartcare-io/admin-api/internal/core/domain"
)

// RequireRole enforces role-based access control. The request is rejected
// with 403 unless the authenticated principal carries one of the allowed
// roles. Must run after Auth.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := c.Get(ContextKeyPrincipal).(domain.Principal)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authentication"})
			}
			if _, ok := allowed[p.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
