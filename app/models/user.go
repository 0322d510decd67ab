package models

import "time"

// User is a console user (academy staff).
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"-" validate:"required,min=8"`
	Name      string    `json:"name" validate:"required"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	RoleID    *string   `json:"role_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`

	Role *Role `json:"role,omitempty"`
}

// Role groups permissions for console users.
type Role struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
