package repository

import (
	"time"

	"github.com/flamtime/SomeNerts/internal/models"
)

// LoginResponse represents the response from login
type LoginResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
	ExpiresAt    time.Time   `json:"expires_at"`
}

// SetupRequest represents the request creating the owner account
type SetupRequest struct {
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required,min=8" validate:"required,min=8"`
}
