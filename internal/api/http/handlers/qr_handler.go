package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fakedev-cmd/botforge-services.it/internal/api/dto"
	"github.com/Fakedev-cmd/botforge-services.it/internal/api/validation"
	"github.com/Fakedev-cmd/botforge-services.it/internal/service"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// QRHandler delegates QR image generation to the external service.
type QRHandler struct {
	service *service.QRService
}

// NewQRHandler constructs handler.
func NewQRHandler(qrService *service.QRService) *QRHandler {
	return &QRHandler{service: qrService}
}

// Generate POST /api/qr-generate.
func (h *QRHandler) Generate(c *fiber.Ctx) error {
	var req dto.QRGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	result := h.service.Generate(req.Content, req.Size, req.Format)
	return c.JSON(dto.QRGenerateResponse{
		QRUrl:   result.URL,
		Content: result.Content,
		Size:    result.Size,
		Format:  result.Format,
	})
}
