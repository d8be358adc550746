package dto

// CreateOrderRequest payload. The userId must match the authenticated caller;
// it remains on the wire for compatibility with the original client.
type CreateOrderRequest struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId" validate:"required"`
}

// UpdateOrderStatusRequest payload.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
