package dto

import (
	"time"

	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/domain"
)

// UserOutput is the public view of an account. Password hash and OTP fields
// are never serialized outward.
type UserOutput struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name,omitempty"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewUserOutput(user *domain.User) UserOutput {
	return UserOutput{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}

type TokenResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        UserOutput `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}
