package auth

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
)

// Verify resolves a bearer token to the user it was issued for.
// Tokens of deleted users are rejected even before they expire.
func (a *AuthUseCase) Verify(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errs.ErrUnauthenticated
	}

	userID, err := a.tokens.Subject(token)
	if err != nil {
		a.logger.Debug("Rejected bearer token", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrUnauthenticated
	}

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}
