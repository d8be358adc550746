package domain

import "time"

// Update is a published announcement. Only owner/manager authors may create
// one.
type Update struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	AuthorID        int64     `json:"authorId"`
	IsFeatureUpdate bool      `json:"isFeatureUpdate"`
	IsImportant     bool      `json:"isImportant"`
	CreatedAt       time.Time `json:"createdAt"`
}
