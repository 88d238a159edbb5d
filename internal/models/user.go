package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the account that owns the score book
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserRole represents available user roles
type UserRole string

const (
	RoleOwner UserRole = "owner"
)

// IsOwner returns true if user has the owner role
func (u *User) IsOwner() bool {
	return u.Role == string(RoleOwner)
}
