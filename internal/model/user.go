package model

import "time"

// User role constants
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents a storefront account. Accounts are created on sign-up and
// only ever mutated by the admin-promotion operation.
type User struct {
	Base
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash *string   `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CreateUserRequest represents sign-up parameters. Password is optional: the
// storefront frontend may authenticate elsewhere and only register the
// identity here.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

// AdminCheckResponse is the wire shape for GET /users/admin/:email.
type AdminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
