package domain

import "time"

// Role determines the permission set granted to a user.
type Role string

const (
	RoleOwner     Role = "owner"
	RoleManager   Role = "manager"
	RoleDeveloper Role = "developer"
	RoleCustomer  Role = "customer"
	RoleUser      Role = "user"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleDeveloper, RoleCustomer, RoleUser:
		return true
	}
	return false
}

// UserStatus represents account lifecycle states.
type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBanned  UserStatus = "banned"
	UserStatusPending UserStatus = "pending"
)

// User is the single principal type; role distinguishes staff from customers.
// Email and username are unique across all users. A banned user cannot log in.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	ProfileImage *string    `json:"profileImage"`
	CreatedAt    time.Time  `json:"createdAt"`
}
