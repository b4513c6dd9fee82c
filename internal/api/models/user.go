package models

import (
	"time"
)

// Role is the coarse actor category used for notification routing.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWriter Role = "writer"
	RoleReader Role = "reader"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleWriter || r == RoleReader
}

type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Password  string     `json:"-"` // bcrypt hash, never serialized
	Role      Role       `json:"role"`
	Points    int        `json:"points"` // invariant: never negative
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
