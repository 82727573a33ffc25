package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"propertyhub/internal/common"
	"propertyhub/pkg/policy"
)

// RequirePermission gates a route on the role/resource/action policy table.
// It runs after JWTMiddleware so the role is already on the context.
func RequirePermission(resource, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			if _, ok := common.GetUserIDFromContext(ctx); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}
			role, ok := common.GetRoleFromContext(ctx)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Role not found")
			}

			if !policy.Allowed(role, resource, action) {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}

			return next(c)
		}
	}
}
