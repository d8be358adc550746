package domain

import "time"

// TicketMessage is one entry in a ticket's flat, append-only thread, ordered
// by creation time. IsStaff marks replies from actors holding manage_tickets.
type TicketMessage struct {
	ID        int64     `json:"id"`
	TicketID  int64     `json:"ticketId"`
	UserID    int64     `json:"userId"`
	Message   string    `json:"message"`
	IsStaff   bool      `json:"isStaff"`
	CreatedAt time.Time `json:"createdAt"`
}
