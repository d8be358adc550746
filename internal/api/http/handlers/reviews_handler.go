package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fakedev-cmd/botforge-services.it/internal/api/dto"
	"github.com/Fakedev-cmd/botforge-services.it/internal/api/validation"
	"github.com/Fakedev-cmd/botforge-services.it/internal/service"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// ReviewsHandler manages product review endpoints.
type ReviewsHandler struct {
	service *service.ReviewService
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviewService *service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{service: reviewService}
}

// List GET /api/reviews. Public; each review carries its author.
func (h *ReviewsHandler) List(c *fiber.Ctx) error {
	reviews, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}

// Create POST /api/reviews.
func (h *ReviewsHandler) Create(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}
	if req.UserID != 0 && req.UserID != principal.ID {
		return apperrors.NewForbidden("Cannot write reviews for another user")
	}

	review, err := h.service.CreateReview(c.UserContext(), principal, req.Rating, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(review)
}
