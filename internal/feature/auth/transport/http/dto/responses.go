package dto

import (
	"time"

	"auth_backend/internal/feature/auth/domain/entity"
)

// UserRes is the public view of a user account. It is an explicit
// allow-list: the password hash and the pending one-time tokens are not
// fields here, so they can never leak through serialization.
type UserRes struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewUserRes projects a user entity onto its public view.
func NewUserRes(u *entity.User) *UserRes {
	return &UserRes{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

// MessageRes is the generic response envelope for operations that return
// no user payload.
type MessageRes struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthRes is the response envelope for operations that return a user.
// Token is only set by operations that issue a session credential.
type AuthRes struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    *UserRes `json:"user,omitempty"`
	Token   string   `json:"token,omitempty"`
}
