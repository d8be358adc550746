package dto

// CreatePasswordRequestRequest payload. As elsewhere, userId must match the
// authenticated caller.
type CreatePasswordRequestRequest struct {
	UserID int64 `json:"userId"`
}

// ProcessPasswordRequestRequest payload for approving/declining.
type ProcessPasswordRequestRequest struct {
	Status      string `json:"status" validate:"required,oneof=approved declined"`
	ProcessedBy int64  `json:"processedBy"`
}
