package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Fakedev-cmd/botforge-services.it/internal/auth"
	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

func requirePrincipal(c *fiber.Ctx) (*domain.User, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return principal, nil
}

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("Invalid "+name, nil)
	}
	return id, nil
}
