package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	coreport "github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
)

const (
	// MaxFullNameLength mirrors the users.full_name column size
	MaxFullNameLength = 50
	// MaxEmailLength mirrors the users.email column size
	MaxEmailLength = 100
	// MinPasswordLength is the shortest password accepted at registration
	MinPasswordLength = 6
)

// User represents an account that owns predictions and audit entries
type User struct {
	ID           uint64    // Unique identifier for the user
	FullName     string    // Unique display name
	Email        string    // Unique login email
	passwordHash string    // Irreversible password hash (private)
	CreatedAt    time.Time // When the user registered
}

// NewUser creates a new user from already-hashed credentials
func NewUser(fullName, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	email = NormalizeEmail(email)

	if fullName == "" || len(fullName) > MaxFullNameLength {
		return nil, fmt.Errorf("%w: full name must be 1-%d characters", errs.ErrInvalidRequest, MaxFullNameLength)
	}
	if email == "" || len(email) > MaxEmailLength {
		return nil, fmt.Errorf("%w: email must be 1-%d characters", errs.ErrInvalidRequest, MaxEmailLength)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash is required", errs.ErrInvalidRequest)
	}

	return &User{
		FullName:     fullName,
		Email:        email,
		passwordHash: passwordHash,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// RestoreUser rebuilds a user from persisted state (for repositories)
func RestoreUser(id uint64, fullName, email, passwordHash string, createdAt time.Time) *User {
	return &User{
		ID:           id,
		FullName:     fullName,
		Email:        email,
		passwordHash: passwordHash,
		CreatedAt:    createdAt,
	}
}

// PasswordHash returns the stored password hash
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// NormalizeEmail trims and lower-cases an email so lookups are case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
