package models

import "time"

// Post is a social media post stored in PostgreSQL. A user may not reuse a
// title across their own posts.
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;uniqueIndex:idx_posts_user_title"`
	Title       string    `json:"title" gorm:"size:128;uniqueIndex:idx_posts_user_title"`
	Description string    `json:"description" gorm:"size:2048"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=128"`
	Description string `json:"description" validate:"max=2048"`
}

// UpdatePostRequest defines the request body for fully replacing a post
type UpdatePostRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=128"`
	Description string `json:"description" validate:"max=2048"`
}

// UpdatePostPartialRequest carries an optional-field patch: only fields
// present in the payload are applied.
type UpdatePostPartialRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=128"`
	Description *string `json:"description" validate:"omitempty,max=2048"`
}
