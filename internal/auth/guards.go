package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// RequirePermission gates a route on the authenticated user's role holding
// the permission. The message stays static; which permission was missing is
// never disclosed.
func RequirePermission(perm Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !HasPermission(principal.Role, perm) {
			return apperrors.NewForbidden("Insufficient permissions")
		}
		return c.Next()
	}
}

// RequireAdmin gates the admin console surface.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !IsAdmin(principal.Role) {
			return apperrors.NewForbidden("Insufficient permissions")
		}
		return c.Next()
	}
}
