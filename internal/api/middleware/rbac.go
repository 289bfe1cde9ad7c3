package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gameops/ticket-board/internal/core/domain"
)

// RBAC enforces role-based access control against the closed role set.
// A role outside domain's recognised values is always denied, even if it
// somehow appears in a signed token.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, _ := c.Get("role").(string)
			role := domain.Role(raw)
			if !role.Valid() {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
