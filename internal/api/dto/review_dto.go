package dto

// CreateReviewRequest payload.
type CreateReviewRequest struct {
	UserID  int64  `json:"userId"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content" validate:"required"`
}
