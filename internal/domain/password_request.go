package domain

import "time"

// PasswordRequestStatus enumerates request lifecycle states. The terminal
// states approved/declined are set exactly once; there is no way back to
// pending.
type PasswordRequestStatus string

const (
	PasswordRequestPending  PasswordRequestStatus = "pending"
	PasswordRequestApproved PasswordRequestStatus = "approved"
	PasswordRequestDeclined PasswordRequestStatus = "declined"
)

// Valid reports whether the status is a known request status.
func (s PasswordRequestStatus) Valid() bool {
	switch s {
	case PasswordRequestPending, PasswordRequestApproved, PasswordRequestDeclined:
		return true
	}
	return false
}

// Terminal reports whether the status can no longer change.
func (s PasswordRequestStatus) Terminal() bool {
	return s == PasswordRequestApproved || s == PasswordRequestDeclined
}

// PasswordChangeRequest records a user asking staff to reset their password.
// Processing fields are populated when a manager approves or declines.
type PasswordChangeRequest struct {
	ID          int64                 `json:"id"`
	UserID      int64                 `json:"userId"`
	Status      PasswordRequestStatus `json:"status"`
	RequestedAt time.Time             `json:"requestedAt"`
	ProcessedAt *time.Time            `json:"processedAt"`
	ProcessedBy *int64                `json:"processedBy"`
}
