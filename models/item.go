package models

import "time"

// Item is a user-owned record as returned by the API.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateItemRequest is the body of POST /api/items.
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	UserID      int64   `json:"user_id" validate:"required,gt=0"`
}

// UpdateItemRequest is the body of PUT /api/items/{id}.
// Only non-nil fields are applied.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	UserID      *int64  `json:"user_id,omitempty" validate:"omitempty,gt=0"`
}
