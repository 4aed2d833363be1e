package prediction

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
)

// History lists the user's predictions, oldest first
func (p *PredictionUseCase) History(ctx context.Context, user *entity.User) ([]*entity.Prediction, error) {
	return p.predictionRepo.ListByUser(ctx, user.ID)
}

// Get returns one prediction owned by the user
func (p *PredictionUseCase) Get(ctx context.Context, user *entity.User, predictionID uint64) (*entity.Prediction, error) {
	return p.predictionRepo.GetForUser(ctx, user.ID, predictionID)
}

// Clear removes every prediction of the user
func (p *PredictionUseCase) Clear(ctx context.Context, user *entity.User) (int64, error) {
	deleted, err := p.predictionRepo.DeleteByUser(ctx, user.ID)
	if err != nil {
		p.logger.Error("Failed to clear prediction history", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return 0, err
	}

	p.logger.Info("Prediction history cleared", map[string]any{
		"userId":  user.ID,
		"deleted": deleted,
	})

	p.audit.Record(ctx, entity.ActionClearHistory,
		fmt.Sprintf("User %s cleared %d predictions", user.Email, deleted), &user.ID)

	return deleted, nil
}
