package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleEmployer   Role = "employer"   // may post jobs and accept/reject bids on owned jobs
	RoleFreelancer Role = "freelancer" // may place and track bids
)

// ErrUnknownRole is returned by ParseRole for values outside the role set.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a wire-level role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleEmployer:
		return RoleEmployer, nil
	case RoleFreelancer:
		return RoleFreelancer, nil
	}
	return "", ErrUnknownRole
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password, never serialized
	Role         Role      `json:"role" db:"role"`             // employer or freelancer
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// AuthUser is the authenticated user attached to a request context.
// It deliberately carries no credential field.
type AuthUser struct {
	UserID uuid.UUID `json:"id" db:"user_id"`
	Name   string    `json:"name" db:"name"`
	Email  string    `json:"email" db:"email"`
	Role   Role      `json:"role" db:"role"`
}
