package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Fakedev-cmd/botforge-services.it/internal/auth"
	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/events"
	"github.com/Fakedev-cmd/botforge-services.it/internal/repository"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// TicketService coordinates support ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	messages   repository.TicketMessageRepository
	dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, messages repository.TicketMessageRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, messages: messages, dispatcher: dispatcher}
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Subject     string
	Description string
	Priority    domain.TicketPriority
	Category    string
}

// TicketDetail is a ticket with requester and full thread.
type TicketDetail struct {
	repository.TicketWithUser
	Messages []repository.TicketMessageWithUser `json:"messages"`
}

// CreateTicket opens a ticket for the acting user. Priority defaults to
// medium; status always starts open.
func (s *TicketService) CreateTicket(ctx context.Context, actor *domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	priority := input.Priority
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.NewValidationError("Invalid input", []apperrors.FieldError{
			{Field: "priority", Message: "must be one of low, medium, high, urgent"},
		})
	}

	ticket := &domain.Ticket{
		UserID:      actor.ID,
		Subject:     input.Subject,
		Description: input.Description,
		Priority:    priority,
		Category:    input.Category,
		Status:      domain.TicketStatusOpen,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:  events.EventTicketCreated,
		Actor: actorFor(actor),
		Payload: events.TicketCreatedPayload{
			TicketID: ticket.ID,
			Subject:  ticket.Subject,
			Priority: ticket.Priority,
			Category: ticket.Category,
		},
	})
	return ticket, nil
}

// ListAll returns every ticket with its requester, for staff.
func (s *TicketService) ListAll(ctx context.Context) ([]repository.TicketWithUser, error) {
	return s.tickets.ListAll(ctx)
}

// ListForUser returns a user's own tickets.
func (s *TicketService) ListForUser(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	return s.tickets.ListByUser(ctx, userID)
}

// GetTicket fetches a ticket with requester and thread. Access: the ticket
// owner or an actor holding manage_tickets.
func (s *TicketService) GetTicket(ctx context.Context, actor *domain.User, id int64) (*TicketDetail, error) {
	ticket, err := s.tickets.GetWithUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Ticket")
		}
		return nil, err
	}
	if ticket.UserID != actor.ID && !auth.HasPermission(actor.Role, auth.PermissionManageTickets) {
		return nil, apperrors.NewForbidden("Insufficient permissions")
	}

	messages, err := s.messages.ListByTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	return &TicketDetail{TicketWithUser: *ticket, Messages: messages}, nil
}

// AddMessage appends to a ticket thread. The isStaff flag follows from the
// actor holding manage_tickets, never from client input.
func (s *TicketService) AddMessage(ctx context.Context, actor *domain.User, ticketID int64, message string) (*domain.TicketMessage, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Ticket")
		}
		return nil, err
	}
	isStaff := auth.HasPermission(actor.Role, auth.PermissionManageTickets)
	if ticket.UserID != actor.ID && !isStaff {
		return nil, apperrors.NewForbidden("Insufficient permissions")
	}

	msg := &domain.TicketMessage{
		TicketID: ticket.ID,
		UserID:   actor.ID,
		Message:  message,
		IsStaff:  isStaff,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:  events.EventTicketMessageAdded,
		Actor: actorFor(actor),
		Payload: events.TicketMessageAddedPayload{
			TicketID:  ticket.ID,
			MessageID: msg.ID,
			IsStaff:   msg.IsStaff,
		},
	})
	return msg, nil
}

// ListMessages returns a ticket's thread, oldest first.
func (s *TicketService) ListMessages(ctx context.Context, actor *domain.User, ticketID int64) ([]repository.TicketMessageWithUser, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Ticket")
		}
		return nil, err
	}
	if ticket.UserID != actor.ID && !auth.HasPermission(actor.Role, auth.PermissionManageTickets) {
		return nil, apperrors.NewForbidden("Insufficient permissions")
	}
	return s.messages.ListByTicket(ctx, ticketID)
}

// UpdateStatus assigns a new ticket status. As with orders, any known status
// may follow any other.
func (s *TicketService) UpdateStatus(ctx context.Context, actor *domain.User, id int64, status domain.TicketStatus) (*domain.Ticket, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("Invalid input", []apperrors.FieldError{
			{Field: "status", Message: "must be one of open, in_progress, closed"},
		})
	}

	current, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Ticket")
		}
		return nil, err
	}

	ticket, err := s.tickets.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Ticket")
		}
		return nil, err
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:  events.EventTicketStatusChanged,
		Actor: actorFor(actor),
		Payload: events.TicketStatusChangedPayload{
			TicketID:  ticket.ID,
			OldStatus: current.Status,
			NewStatus: ticket.Status,
		},
	})
	return ticket, nil
}
