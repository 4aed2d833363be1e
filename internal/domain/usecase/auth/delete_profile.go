package auth

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
)

// DeleteProfile removes the user. Predictions and audit entries of the user go with it.
func (a *AuthUseCase) DeleteProfile(ctx context.Context, user *entity.User) error {
	txCtx, err := a.unitOfWork.Begin(ctx)
	if err != nil {
		a.logger.Error("Failed to begin transaction", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = a.unitOfWork.Rollback(txCtx)
			panic(r)
		}
	}()

	if err := a.unitOfWork.GetUserRepository(txCtx).Delete(txCtx, user.ID); err != nil {
		if rbErr := a.unitOfWork.Rollback(txCtx); rbErr != nil {
			a.logger.Error("Failed to rollback transaction", map[string]any{
				"userId": user.ID,
				"error":  rbErr.Error(),
			})
		}
		a.logger.Error("Failed to delete user", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return err
	}

	if err := a.unitOfWork.Commit(txCtx); err != nil {
		a.logger.Error("Failed to commit user deletion", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return err
	}

	a.logger.Info("User deleted", map[string]any{
		"userId": user.ID,
	})

	// Written without an owner so the cascade above cannot remove it
	a.audit.Record(ctx, entity.ActionDeleteProfile, fmt.Sprintf("User %s (id %d) deleted their profile", user.Email, user.ID), nil)

	return nil
}
