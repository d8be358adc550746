package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Fakedev-cmd/botforge-services.it/internal/api/dto"
	"github.com/Fakedev-cmd/botforge-services.it/internal/api/validation"
	"github.com/Fakedev-cmd/botforge-services.it/internal/auth"
	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/service"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// OrdersHandler manages order endpoints.
type OrdersHandler struct {
	service *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{service: orderService}
}

// Create POST /api/orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}
	if req.UserID != 0 && req.UserID != principal.ID {
		return apperrors.NewForbidden("Cannot create orders for another user")
	}

	order, err := h.service.CreateOrder(c.UserContext(), principal, req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// List GET /api/orders. Without a userId filter the full joined list is
// returned to order managers; with one, callers see their own orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	if raw := c.Query("userId"); raw != "" {
		userID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || userID <= 0 {
			return apperrors.NewValidationError("Invalid userId", nil)
		}
		if userID != principal.ID && !auth.HasPermission(principal.Role, auth.PermissionManageOrders) {
			return apperrors.NewForbidden("Insufficient permissions")
		}
		orders, err := h.service.ListForUser(c.UserContext(), userID)
		if err != nil {
			return err
		}
		return c.JSON(orders)
	}

	if !auth.HasPermission(principal.Role, auth.PermissionManageOrders) {
		return apperrors.NewForbidden("Insufficient permissions")
	}
	orders, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// UpdateStatus PATCH /api/orders/:id/status.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	order, err := h.service.UpdateStatus(c.UserContext(), principal, id, domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(order)
}
