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

// TicketsHandler manages support ticket endpoints and their message threads.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Create POST /api/tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}
	if req.UserID != 0 && req.UserID != principal.ID {
		return apperrors.NewForbidden("Cannot create tickets for another user")
	}

	ticket, err := h.service.CreateTicket(c.UserContext(), principal, service.TicketCreateInput{
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    domain.TicketPriority(req.Priority),
		Category:    req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(ticket)
}

// List GET /api/tickets. Staff with manage_tickets see the full joined list;
// with a userId filter, callers see their own tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	if raw := c.Query("userId"); raw != "" {
		userID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || userID <= 0 {
			return apperrors.NewValidationError("Invalid userId", nil)
		}
		if userID != principal.ID && !auth.HasPermission(principal.Role, auth.PermissionManageTickets) {
			return apperrors.NewForbidden("Insufficient permissions")
		}
		tickets, err := h.service.ListForUser(c.UserContext(), userID)
		if err != nil {
			return err
		}
		return c.JSON(tickets)
	}

	if !auth.HasPermission(principal.Role, auth.PermissionManageTickets) {
		return apperrors.NewForbidden("Insufficient permissions")
	}
	tickets, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(tickets)
}

// Get GET /api/tickets/:id, returning the ticket with requester and thread.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.service.GetTicket(c.UserContext(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

// UpdateStatus PATCH /api/tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateTicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	ticket, err := h.service.UpdateStatus(c.UserContext(), principal, id, domain.TicketStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(ticket)
}

// AddMessage POST /api/tickets/:id/messages.
func (h *TicketsHandler) AddMessage(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateTicketMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	message, err := h.service.AddMessage(c.UserContext(), principal, id, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(message)
}

// ListMessages GET /api/tickets/:id/messages.
func (h *TicketsHandler) ListMessages(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	messages, err := h.service.ListMessages(c.UserContext(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(messages)
}
