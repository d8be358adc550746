package dto

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	UserID      int64  `json:"userId"`
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Category    string `json:"category" validate:"required"`
}

// UpdateTicketStatusRequest payload.
type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateTicketMessageRequest payload for thread replies.
type CreateTicketMessageRequest struct {
	Message string `json:"message" validate:"required"`
}
