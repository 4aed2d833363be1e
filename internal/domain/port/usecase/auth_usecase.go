package usecase

import (
	"context"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/security"
)

// RegisterRequest carries the fields needed to open an account
type RegisterRequest struct {
	FullName string
	Email    string
	Password string
}

// AuthUseCase defines account and authentication operations
type AuthUseCase interface {
	// Register creates an account; a taken email or name yields ErrDuplicateRegistration
	Register(ctx context.Context, req RegisterRequest) (*entity.User, error)

	// Login checks credentials and issues a bearer token, or ErrInvalidCredentials
	Login(ctx context.Context, email, password string) (security.Token, error)

	// Verify resolves a bearer token to a live user, or ErrUnauthenticated
	Verify(ctx context.Context, token string) (*entity.User, error)

	// DeleteProfile removes the user together with its predictions and logs
	DeleteProfile(ctx context.Context, user *entity.User) error
}
