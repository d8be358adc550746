package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fakedev-cmd/botforge-services.it/internal/api/dto"
	"github.com/Fakedev-cmd/botforge-services.it/internal/api/validation"
	"github.com/Fakedev-cmd/botforge-services.it/internal/service"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// UpdatesHandler manages announcement endpoints.
type UpdatesHandler struct {
	service *service.UpdateService
}

// NewUpdatesHandler constructs handler.
func NewUpdatesHandler(updateService *service.UpdateService) *UpdatesHandler {
	return &UpdatesHandler{service: updateService}
}

// List GET /api/updates. Public; newest first with author.
func (h *UpdatesHandler) List(c *fiber.Ctx) error {
	updates, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(updates)
}

// Create POST /api/updates.
func (h *UpdatesHandler) Create(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}
	if req.AuthorID != 0 && req.AuthorID != principal.ID {
		return apperrors.NewForbidden("Cannot publish updates as another user")
	}

	update, err := h.service.PublishUpdate(c.UserContext(), principal, service.UpdateInput{
		Title:           req.Title,
		Content:         req.Content,
		IsFeatureUpdate: req.IsFeatureUpdate,
		IsImportant:     req.IsImportant,
	})
	if err != nil {
		return err
	}
	return c.JSON(update)
}
