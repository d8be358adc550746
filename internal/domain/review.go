package domain

import "time"

// Review is customer feedback. Only users with role customer or user may
// create one; the check happens at write time, not in the schema.
type Review struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
