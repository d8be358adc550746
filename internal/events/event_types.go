package events

import (
	"time"

	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated             EventType = "order_created"
	EventOrderStatusChanged       EventType = "order_status_changed"
	EventTicketCreated            EventType = "ticket_created"
	EventTicketStatusChanged      EventType = "ticket_status_changed"
	EventTicketMessageAdded       EventType = "ticket_message_added"
	EventUpdatePublished          EventType = "update_published"
	EventUserBanned               EventType = "user_banned"
	EventPasswordRequestProcessed EventType = "password_request_processed"
)

// Actor identifies who triggered an event.
type Actor struct {
	UserID int64       `json:"userId"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	OrderID   int64  `json:"orderId"`
	ProductID int64  `json:"productId"`
	Amount    string `json:"amount"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OrderID   int64              `json:"orderId"`
	OldStatus domain.OrderStatus `json:"oldStatus"`
	NewStatus domain.OrderStatus `json:"newStatus"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID int64                 `json:"ticketId"`
	Subject  string                `json:"subject"`
	Priority domain.TicketPriority `json:"priority"`
	Category string                `json:"category"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	TicketID  int64               `json:"ticketId"`
	OldStatus domain.TicketStatus `json:"oldStatus"`
	NewStatus domain.TicketStatus `json:"newStatus"`
}

// TicketMessageAddedPayload payload.
type TicketMessageAddedPayload struct {
	TicketID  int64 `json:"ticketId"`
	MessageID int64 `json:"messageId"`
	IsStaff   bool  `json:"isStaff"`
}

// UpdatePublishedPayload payload.
type UpdatePublishedPayload struct {
	UpdateID    int64  `json:"updateId"`
	Title       string `json:"title"`
	IsImportant bool   `json:"isImportant"`
}

// UserBannedPayload payload.
type UserBannedPayload struct {
	UserID int64 `json:"userId"`
}

// PasswordRequestProcessedPayload payload.
type PasswordRequestProcessedPayload struct {
	RequestID int64                        `json:"requestId"`
	Status    domain.PasswordRequestStatus `json:"status"`
}
