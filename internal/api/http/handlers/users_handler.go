package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fakedev-cmd/botforge-services.it/internal/service"
)

// UsersHandler exposes the user administration endpoints.
type UsersHandler struct {
	service *service.AccountService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(accountService *service.AccountService) *UsersHandler {
	return &UsersHandler{service: accountService}
}

// List GET /api/users. Password hashes never serialize (json:"-").
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// Ban PATCH /api/users/:id/ban.
func (h *UsersHandler) Ban(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	user, err := h.service.BanUser(c.UserContext(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}
