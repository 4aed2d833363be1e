package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/usecase"
)

// Register creates a new account with a hashed password
func (a *AuthUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.User, error) {
	if len(req.Password) < entity.MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", errs.ErrInvalidRequest, entity.MinPasswordLength)
	}

	email := entity.NormalizeEmail(req.Email)
	exists, err := a.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrDuplicateRegistration
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidRequest) {
			return nil, err
		}
		a.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}

	user, err := entity.NewUser(req.FullName, email, hash, a.timeProvider)
	if err != nil {
		return nil, err
	}

	// The unique indexes catch a concurrent registration that passed the check above
	if err := a.userRepo.Create(ctx, user); err != nil {
		if !errors.Is(err, errs.ErrDuplicateRegistration) {
			a.logger.Error("Failed to create user", map[string]any{
				"email": email,
				"error": err.Error(),
			})
		}
		return nil, err
	}

	a.logger.Info("User registered", map[string]any{
		"userId": user.ID,
	})

	a.audit.Record(ctx, entity.ActionRegister, fmt.Sprintf("User %s registered", user.Email), &user.ID)

	return user, nil
}
