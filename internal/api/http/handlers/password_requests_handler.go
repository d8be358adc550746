package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fakedev-cmd/botforge-services.it/internal/api/dto"
	"github.com/Fakedev-cmd/botforge-services.it/internal/api/validation"
	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/service"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// PasswordRequestsHandler manages the password-change request workflow.
type PasswordRequestsHandler struct {
	service *service.AccountService
}

// NewPasswordRequestsHandler constructs handler.
func NewPasswordRequestsHandler(accountService *service.AccountService) *PasswordRequestsHandler {
	return &PasswordRequestsHandler{service: accountService}
}

// ListPending GET /api/password-requests. Pending requests only, with users.
func (h *PasswordRequestsHandler) ListPending(c *fiber.Ctx) error {
	requests, err := h.service.ListPendingRequests(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(requests)
}

// Create POST /api/password-requests.
func (h *PasswordRequestsHandler) Create(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreatePasswordRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if req.UserID != 0 && req.UserID != principal.ID {
		return apperrors.NewForbidden("Cannot request a password change for another user")
	}

	request, err := h.service.CreateRequest(c.UserContext(), principal)
	if err != nil {
		return err
	}
	return c.JSON(request)
}

// Process PATCH /api/password-requests/:id.
func (h *PasswordRequestsHandler) Process(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.ProcessPasswordRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}
	if req.ProcessedBy != 0 && req.ProcessedBy != principal.ID {
		return apperrors.NewForbidden("Cannot process requests as another user")
	}

	request, err := h.service.ProcessRequest(c.UserContext(), principal, id, domain.PasswordRequestStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(request)
}
