package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/security"
)

// Login checks the email/password pair and issues a bearer token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (a *AuthUseCase) Login(ctx context.Context, email, password string) (security.Token, error) {
	user, err := a.userRepo.GetByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return security.Token{}, errs.ErrInvalidCredentials
		}
		return security.Token{}, err
	}

	if !a.hasher.Verify(user.PasswordHash(), password) {
		return security.Token{}, errs.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		a.logger.Error("Failed to issue access token", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return security.Token{}, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}

	a.audit.Record(ctx, entity.ActionLogin, fmt.Sprintf("User %s logged in", user.Email), &user.ID)

	return token, nil
}
