package persistence

import (
	"context"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
)

// PredictionRepository defines the methods to interact with stored predictions
type PredictionRepository interface {
	// Create stores a new prediction and assigns its ID
	//
	// Possible errors:
	// - ErrPersistenceFailure: If the database operation fails (including a missing owner)
	Create(ctx context.Context, prediction *entity.Prediction) error

	// ListByUser returns the user's predictions ordered by creation
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Prediction, error)

	// GetForUser returns one prediction scoped to its owner
	//
	// Possible errors:
	// - ErrPredictionNotFound: If the prediction is absent or owned by another user
	// - ErrPersistenceFailure: If the database operation fails
	GetForUser(ctx context.Context, userID, predictionID uint64) (*entity.Prediction, error)

	// DeleteByUser removes all predictions of the user and returns how many were removed
	DeleteByUser(ctx context.Context, userID uint64) (int64, error)
}
