package security

import (
	"time"
)

// PasswordHasher hashes and verifies passwords. Only hashes are ever stored.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// Token is a signed bearer token handed to a client after login
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// TokenService issues and parses signed, time-limited bearer tokens whose
// subject is the user ID.
type TokenService interface {
	Issue(userID uint64) (Token, error)
	// Subject returns the user ID carried by a valid token. Any decode error,
	// expiry or missing subject yields ErrUnauthenticated.
	Subject(token string) (uint64, error)
}
