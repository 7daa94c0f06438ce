package models

import "time"

// User is an account as returned by the API.
//
// The password hash is never part of the JSON representation.
type User struct {
	// ID is the unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// PasswordHash is the serialized PBKDF2 hash record of the password.
	PasswordHash string `json:"-"`

	// IsActive reports whether the account may be used.
	IsActive bool `json:"is_active"`

	// IsAdmin grants administrative privileges.
	IsAdmin bool `json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
	IsAdmin  *bool  `json:"is_admin,omitempty"`
}

// UpdateUserRequest is the body of PUT /api/users/{id}.
// Only non-nil fields are applied.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=64"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1"`
	IsActive *bool   `json:"is_active,omitempty"`
	IsAdmin  *bool   `json:"is_admin,omitempty"`
}
