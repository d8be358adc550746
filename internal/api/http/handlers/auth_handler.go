package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fakedev-cmd/botforge-services.it/internal/api/dto"
	"github.com/Fakedev-cmd/botforge-services.it/internal/api/validation"
	"github.com/Fakedev-cmd/botforge-services.it/internal/service"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Register POST /api/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	user, err := h.service.Register(c.UserContext(), service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.RegisterResponse{User: user})
}

// Login POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	user, token, expiresAt, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{User: user, Token: token, ExpiresAt: expiresAt})
}
