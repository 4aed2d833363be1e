package persistence

import (
	"context"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
)

// UserRepository defines the methods to interact with user accounts
type UserRepository interface {
	// Create stores a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateRegistration: If the email or full name is already taken
	// - ErrPersistenceFailure: If the database operation fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given ID
	// - ErrPersistenceFailure: If the database operation fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by (normalized) email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given email
	// - ErrPersistenceFailure: If the database operation fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// EmailExists checks whether an account already uses the email
	EmailExists(ctx context.Context, email string) (bool, error)

	// Delete removes the user; predictions and logs are removed by ON DELETE CASCADE
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given ID
	// - ErrPersistenceFailure: If the database operation fails
	Delete(ctx context.Context, id uint64) error
}
