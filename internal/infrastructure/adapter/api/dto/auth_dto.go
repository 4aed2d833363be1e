package dto

import (
	"time"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
)

// RegisterRequest represents the API request for opening an account
type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the API request for obtaining a token
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is returned after registration
type UserResponse struct {
	ID       uint64 `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// MeResponse describes the authenticated user
type MeResponse struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullname"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// NewUserResponse maps a user to its registration response
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, FullName: u.FullName, Email: u.Email}
}

// NewMeResponse maps a user to its profile response
func NewMeResponse(u *entity.User) MeResponse {
	return MeResponse{ID: u.ID, Email: u.Email, FullName: u.FullName, CreatedAt: u.CreatedAt}
}
