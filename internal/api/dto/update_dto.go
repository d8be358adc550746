package dto

// CreateUpdateRequest payload for publishing announcements.
type CreateUpdateRequest struct {
	AuthorID        int64  `json:"authorId"`
	Title           string `json:"title" validate:"required"`
	Content         string `json:"content" validate:"required"`
	IsFeatureUpdate bool   `json:"isFeatureUpdate"`
	IsImportant     bool   `json:"isImportant"`
}
