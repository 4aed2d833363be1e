package usecase

import (
	"context"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
)

// ImageUpload is an uploaded banknote image
type ImageUpload struct {
	FileName string
	Data     []byte
}

// PredictionResult is the combined outcome of a classification request
type PredictionResult struct {
	Prediction   *entity.Prediction
	QualityFlags []string
}

// PredictionUseCase defines the classification workflow and history operations
type PredictionUseCase interface {
	// Classify stores the image, runs the external classifier and persists the result
	Classify(ctx context.Context, user *entity.User, upload ImageUpload) (*PredictionResult, error)

	// History lists the user's predictions ordered by creation
	History(ctx context.Context, user *entity.User) ([]*entity.Prediction, error)

	// Get returns one of the user's predictions, or ErrPredictionNotFound
	Get(ctx context.Context, user *entity.User, predictionID uint64) (*entity.Prediction, error)

	// Clear deletes all of the user's predictions and returns how many were removed
	Clear(ctx context.Context, user *entity.User) (int64, error)
}
