package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:128"`
	Email     string    `json:"email" gorm:"size:128;uniqueIndex"` // Ensure email is unique across all users
	Password  string    `json:"-"`                                 // Store hashed password, ignore for JSON serialization
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserCompact is the public author projection returned inside feed entries
// and follower listings.
type UserCompact struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ToCompact converts a User to its public projection
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=2,max=128"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=128"`
	Email    string `json:"email" validate:"required,email"`
}

// UpdateUserPartialRequest carries an optional-field patch: only fields
// present in the payload are applied.
type UpdateUserPartialRequest struct {
	Username *string `json:"username" validate:"omitempty,min=2,max=128"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
