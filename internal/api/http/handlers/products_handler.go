package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fakedev-cmd/botforge-services.it/internal/api/dto"
	"github.com/Fakedev-cmd/botforge-services.it/internal/api/validation"
	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/service"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// ProductsHandler serves the public catalog and admin catalog writes.
type ProductsHandler struct {
	service *service.CatalogService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(catalogService *service.CatalogService) *ProductsHandler {
	return &ProductsHandler{service: catalogService}
}

// List GET /api/products. Public; active products only.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.service.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// Create POST /api/products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	input, err := parseProductRequest(c)
	if err != nil {
		return err
	}
	product, err := h.service.CreateProduct(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Update PATCH /api/products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	input, err := parseProductRequest(c)
	if err != nil {
		return err
	}
	product, err := h.service.UpdateProduct(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

func parseProductRequest(c *fiber.Ctx) (service.ProductInput, error) {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return service.ProductInput{}, apperrors.NewValidationError("Invalid request body", nil)
	}
	if err := validation.Struct(&req); err != nil {
		return service.ProductInput{}, err
	}
	status := domain.ProductStatus(req.Status)
	if req.Status == "" {
		status = domain.ProductStatusActive
	}
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Features:    req.Features,
		Category:    req.Category,
		Status:      status,
	}, nil
}
