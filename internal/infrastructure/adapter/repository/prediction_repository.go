package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	coreport "github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/model"
)

// PredictionRepository implements persistence.PredictionRepository using GORM
type PredictionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.PredictionRepository = (*PredictionRepository)(nil)

// NewPredictionRepository creates a new PredictionRepository instance
func NewPredictionRepository(db *gorm.DB, logger coreport.Logger) *PredictionRepository {
	return &PredictionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func predictionToModel(p *entity.Prediction) *model.Prediction {
	return &model.Prediction{
		ID:                p.ID,
		UserID:            p.UserID,
		CurrencyCode:      p.CurrencyCode,
		Confidence:        p.Confidence,
		NameEn:            p.NameEn,
		NameAr:            p.NameAr,
		DenominationValue: p.DenominationValue,
		IsCounterfeit:     p.IsCounterfeit,
		ImagePath:         p.ImagePath,
		Timestamp:         p.Timestamp,
	}
}

func predictionToEntity(m *model.Prediction) *entity.Prediction {
	return &entity.Prediction{
		ID:                m.ID,
		UserID:            m.UserID,
		CurrencyCode:      m.CurrencyCode,
		Confidence:        m.Confidence,
		NameEn:            m.NameEn,
		NameAr:            m.NameAr,
		DenominationValue: m.DenominationValue,
		IsCounterfeit:     m.IsCounterfeit,
		ImagePath:         m.ImagePath,
		Timestamp:         m.Timestamp,
	}
}

// Create inserts the prediction and sets its generated ID
func (r *PredictionRepository) Create(ctx context.Context, prediction *entity.Prediction) error {
	m := predictionToModel(prediction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "creating prediction", err, errs.ErrPredictionNotFound, map[string]any{
			"user_id": prediction.UserID,
		})
	}

	prediction.ID = m.ID
	r.logger.Debug("Prediction created", map[string]any{
		"user_id":       prediction.UserID,
		"prediction_id": prediction.ID,
	})
	return nil
}

// ListByUser returns the user's predictions ordered by timestamp, then ID
func (r *PredictionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Prediction, error) {
	var models []model.Prediction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC").Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing predictions", err, errs.ErrPredictionNotFound, map[string]any{
			"user_id": userID,
		})
	}

	predictions := make([]*entity.Prediction, 0, len(models))
	for i := range models {
		predictions = append(predictions, predictionToEntity(&models[i]))
	}
	return predictions, nil
}

// GetForUser returns the prediction only if it belongs to the user
func (r *PredictionRepository) GetForUser(ctx context.Context, userID, predictionID uint64) (*entity.Prediction, error) {
	var m model.Prediction
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", predictionID, userID).
		First(&m).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting prediction", err, errs.ErrPredictionNotFound, map[string]any{
			"user_id":       userID,
			"prediction_id": predictionID,
		})
	}
	return predictionToEntity(&m), nil
}

// DeleteByUser removes all predictions of the user
func (r *PredictionRepository) DeleteByUser(ctx context.Context, userID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Prediction{})
	if result.Error != nil {
		return 0, handleDatabaseError(r.logger, r.errorClassifier, "deleting predictions", result.Error, errs.ErrPredictionNotFound, map[string]any{
			"user_id": userID,
		})
	}
	return result.RowsAffected, nil
}
