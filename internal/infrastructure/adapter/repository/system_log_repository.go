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

// SystemLogRepository implements persistence.SystemLogRepository using GORM
type SystemLogRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.SystemLogRepository = (*SystemLogRepository)(nil)

// NewSystemLogRepository creates a new SystemLogRepository instance
func NewSystemLogRepository(db *gorm.DB, logger coreport.Logger) *SystemLogRepository {
	return &SystemLogRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Append inserts an audit entry and sets its generated ID
func (r *SystemLogRepository) Append(ctx context.Context, entry *entity.SystemLog) error {
	m := model.SystemLog{
		UserID:    entry.UserID,
		Action:    entry.Action,
		Message:   entry.Message,
		Timestamp: entry.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "appending system log", err, errs.ErrNotFound, map[string]any{
			"action": entry.Action,
		})
	}
	entry.ID = m.ID
	return nil
}

// ListByUser returns the user's audit entries, oldest first
func (r *SystemLogRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.SystemLog, error) {
	var models []model.SystemLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC").Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing system logs", err, errs.ErrNotFound, map[string]any{
			"user_id": userID,
		})
	}

	entries := make([]*entity.SystemLog, 0, len(models))
	for _, m := range models {
		entries = append(entries, &entity.SystemLog{
			ID:        m.ID,
			UserID:    m.UserID,
			Action:    m.Action,
			Message:   m.Message,
			Timestamp: m.Timestamp,
		})
	}
	return entries, nil
}
